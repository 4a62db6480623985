package kardex

import (
	"context"

	"github.com/jcastro/kardex-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el append del movimiento y la
// actualización del saldo del lote sean atómicos: si fn falla no queda
// escritura parcial visible.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		lotRepo repository.LotRepository,
		movRepo repository.MovementRepository,
	) error) error
}
