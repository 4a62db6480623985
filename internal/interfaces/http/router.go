package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/kardex-api/internal/application/kardex"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC  *kardex.LedgerUseCase
	PDFGen    kardex.KardexPDFGenerator
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	kdx := protected.Group("/kardex")
	handler := NewKardexHandler(deps.LedgerUC, deps.PDFGen)

	kdx.Post("/lots", handler.CreateLot)
	kdx.Get("/lots/:id/movements", handler.ListMovementsByLot)
	kdx.Get("/lots/:id/report", handler.GetKardexReport)
	kdx.Post("/movements", handler.RegisterMovement)
	kdx.Get("/warehouses/:id/lots", handler.ListLotsByWarehouse)
	kdx.Get("/warehouses/:id/movements", handler.ListWarehouseLedger)
}
