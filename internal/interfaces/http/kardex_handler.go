package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/kardex-api/internal/application/dto"
	"github.com/jcastro/kardex-api/internal/application/kardex"
	"github.com/jcastro/kardex-api/internal/domain"
)

// KardexHandler maneja las peticiones HTTP del kardex de lotes (protegido).
type KardexHandler struct {
	uc     *kardex.LedgerUseCase
	pdfGen kardex.KardexPDFGenerator
}

// NewKardexHandler construye el handler.
func NewKardexHandler(uc *kardex.LedgerUseCase, pdfGen kardex.KardexPDFGenerator) *KardexHandler {
	return &KardexHandler{uc: uc, pdfGen: pdfGen}
}

// CreateLot godoc
// @Summary      Crear lote
// @Tags         kardex
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLotRequest  true  "product_id, unit_id, warehouse_id, initial_stock, ingress_date, expiration_date (perecibles)"
// @Success      201   {object}  dto.LotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/kardex/lots [post]
func (h *KardexHandler) CreateLot(c *fiber.Ctx) error {
	var in dto.CreateLotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	ingress, err := time.Parse(dto.DateLayout, in.IngressDate)
	if err != nil {
		return validationResponse(c, domain.NewValidationError("ingress_date", "fecha inválida, formato YYYY-MM-DD"))
	}
	var expiration *time.Time
	if in.ExpirationDate != nil && *in.ExpirationDate != "" {
		exp, err := time.Parse(dto.DateLayout, *in.ExpirationDate)
		if err != nil {
			return validationResponse(c, domain.NewValidationError("expiration_date", "fecha inválida, formato YYYY-MM-DD"))
		}
		expiration = &exp
	}

	lot, err := h.uc.CreateLot(c.Context(), kardex.CreateLotInput{
		ProductID:      in.ProductID,
		UnitID:         in.UnitID,
		WarehouseID:    in.WarehouseID,
		Description:    in.Description,
		InitialStock:   in.InitialStock,
		IngressDate:    ingress,
		ExpirationDate: expiration,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromLot(lot))
}

// ListLotsByWarehouse godoc
// @Summary      Lotes de una bodega
// @Tags         kardex
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de bodega"
// @Success      200  {array}   dto.LotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/kardex/warehouses/{id}/lots [get]
func (h *KardexHandler) ListLotsByWarehouse(c *fiber.Ctx) error {
	lots, err := h.uc.ListLotsByWarehouse(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	out := make([]dto.LotResponse, 0, len(lots))
	for _, l := range lots {
		out = append(out, dto.FromLot(l))
	}
	return c.JSON(out)
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de kardex
// @Tags         kardex
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "lot_id, kind (inflow|outflow), quantity, code, gloss"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/kardex/movements [post]
func (h *KardexHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.uc.RecordMovement(c.Context(), kardex.RecordMovementInput{
		LotID:    in.LotID,
		Kind:     in.Kind,
		Quantity: in.Quantity,
		Code:     in.Code,
		Gloss:    in.Gloss,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromMovement(mov))
}

// ListMovementsByLot godoc
// @Summary      Kardex de un lote
// @Tags         kardex
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de lote"
// @Success      200  {array}   dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/kardex/lots/{id}/movements [get]
func (h *KardexHandler) ListMovementsByLot(c *fiber.Ctx) error {
	movs, err := h.uc.ListMovementsByLot(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.FromMovement(m))
	}
	return c.JSON(out)
}

// ListWarehouseLedger godoc
// @Summary      Log de actividad de una bodega
// @Description  Movimientos de todos los lotes de la bodega, anotados con
//
//	producto y código de lote, con búsqueda libre, filtros de faceta
//	en AND y paginación.
//
// @Tags         kardex
// @Security     Bearer
// @Produce      json
// @Param        id        path   string  true   "ID de bodega"
// @Param        q         query  string  false  "Búsqueda libre (código, glosa, producto, lote)"
// @Param        product   query  string  false  "Filtro exacto por nombre de producto"
// @Param        lot_code  query  string  false  "Filtro exacto por código de lote"
// @Param        page      query  int     false  "Página (base 1)"
// @Param        size      query  int     false  "Tamaño de página (máx 100)"
// @Success      200  {object}  dto.WarehouseLedgerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/kardex/warehouses/{id}/movements [get]
func (h *KardexHandler) ListWarehouseLedger(c *fiber.Ctx) error {
	entries, err := h.uc.ListLedgerByWarehouse(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	page.DefaultPage()

	query := c.Query("q")
	productFilter := c.Query("product")
	lotCodeFilter := c.Query("lot_code")

	// La faceta de productos siempre sale de la secuencia completa; la de
	// lotes se estrecha al producto elegido.
	facets := kardex.FilterFacets(entries)
	if productFilter != "" {
		facets.LotCodes = kardex.FilterFacets(kardex.Search(entries, "", productFilter, "")).LotCodes
	}

	filtered := kardex.Search(entries, query, productFilter, lotCodeFilter)
	paged := kardex.Paginate(filtered, page.Page, page.Size)

	out := make([]dto.LedgerEntryResponse, 0, len(paged))
	for _, e := range paged {
		out = append(out, dto.FromLedgerEntry(e))
	}
	return c.JSON(dto.WarehouseLedgerResponse{
		Entries: out,
		Facets:  dto.FacetsResponse{Products: facets.Products, LotCodes: facets.LotCodes},
		Page:    page.Page,
		Size:    page.Size,
		Total:   len(filtered),
	})
}

// GetKardexReport godoc
// @Summary      Reporte PDF del kardex de un lote
// @Tags         kardex
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de lote"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/kardex/lots/{id}/report [get]
func (h *KardexHandler) GetKardexReport(c *fiber.Ctx) error {
	data, err := h.uc.GetReportData(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	pdfBytes, err := h.pdfGen.GenerateKardexPDF(c.Context(), data.Lot, data.Product, data.Unit, data.Warehouse, data.Movements)
	if err != nil {
		return errorResponse(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="kardex-`+data.Lot.Code+`.pdf"`)
	return c.Send(pdfBytes)
}

// errorResponse traduce los errores de dominio al contrato HTTP. Los cuatro
// resultados esperados llegan tipados; cualquier otro es fallo de infraestructura.
func errorResponse(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return validationResponse(c, verr)
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "conflicto de concurrencia, reintente"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "recurso duplicado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func validationResponse(c *fiber.Ctx, verr *domain.ValidationError) error {
	fields := make([]dto.FieldErrorDTO, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, dto.FieldErrorDTO{Field: f.Field, Reason: f.Reason})
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    "VALIDATION",
		Message: "datos inválidos",
		Fields:  fields,
	})
}
