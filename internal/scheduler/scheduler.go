// Package scheduler ejecuta tareas periódicas del kardex. Hoy solo una: la
// vigilancia diaria de lotes por vencer. La entrega de notificaciones es de
// otro servicio; aquí solo se detecta y se deja registro estructurado.
package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jcastro/kardex-api/internal/domain/repository"
	"github.com/jcastro/kardex-api/pkg/logger"
)

// Scheduler envuelve cron con las tareas del kardex.
type Scheduler struct {
	cron      *cron.Cron
	lotRepo   repository.LotRepository
	log       *logger.Logger
	spec      string // expresión cron estándar de 5 campos
	alertDays int    // ventana de alerta: lotes que vencen dentro de N días
}

// New construye el scheduler. spec es una expresión cron de 5 campos
// (ej. "0 6 * * *" = todos los días a las 06:00).
func New(lotRepo repository.LotRepository, log *logger.Logger, spec string, alertDays int) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		lotRepo:   lotRepo,
		log:       log,
		spec:      spec,
		alertDays: alertDays,
	}
}

// Start registra y arranca la tarea de vigilancia de vencimientos.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.checkExpiringLots); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info().Str("spec", s.spec).Int("alert_days", s.alertDays).Msg("scheduler iniciado")
	return nil
}

// Stop detiene el cron; las tareas en curso terminan solas.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info().Msg("scheduler detenido")
}

// checkExpiringLots registra una advertencia por cada lote activo cuyo
// vencimiento cae dentro de la ventana de alerta.
func (s *Scheduler) checkExpiringLots() {
	cutoff := time.Now().AddDate(0, 0, s.alertDays)
	lots, err := s.lotRepo.ListExpiringBefore(cutoff)
	if err != nil {
		s.log.Error().Err(err).Msg("vigilancia de vencimientos")
		return
	}
	for _, lot := range lots {
		evt := s.log.Warn().
			Str("lot_id", lot.ID).
			Str("lot_code", lot.Code).
			Str("warehouse_id", lot.WarehouseID).
			Str("balance", lot.CurrentBalance.String())
		if lot.ExpirationDate != nil {
			evt = evt.Str("expiration_date", lot.ExpirationDate.Format("2006-01-02"))
		}
		evt.Msg("lote por vencer")
	}
	s.log.Info().Int("total", len(lots)).Msg("vigilancia de vencimientos completada")
}
