package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	app "github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// AdjustmentHandler ajustes por conteo físico (protegido).
type AdjustmentHandler struct {
	uc  *app.AdjustmentUseCase
	log *logger.Logger
}

// NewAdjustmentHandler construye el handler.
func NewAdjustmentHandler(uc *app.AdjustmentUseCase, log *logger.Logger) *AdjustmentHandler {
	return &AdjustmentHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear ajuste en borrador
// @Tags         adjustments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAdjustmentRequest  true  "Bodega, motivo y conteos"
// @Success      201   {object}  dto.AdjustmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/adjustments [post]
func (h *AdjustmentHandler) Create(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return nil
	}
	var in dto.CreateAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	lines := make([]entity.AdjustmentLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, entity.AdjustmentLine{
			ProductID:        l.ProductID,
			ExpectedQuantity: l.ExpectedQuantity,
			CountedQuantity:  l.CountedQuantity,
			SerialNumbers:    l.SerialNumbers,
			BatchNumber:      l.BatchNumber,
			ExpiryDate:       l.ExpiryDate,
		})
	}
	draft := app.AdjustmentDraft{
		CompanyID:   companyID,
		UserID:      userID,
		Date:        time.Now(),
		WarehouseID: in.WarehouseID,
		Reason:      entity.AdjustmentReason(in.Reason),
		Lines:       lines,
	}
	if in.Date != nil {
		draft.Date = *in.Date
	}
	a, err := h.uc.CreateAdjustment(c.Context(), draft)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toAdjustmentResponse(a))
}

// GetByID godoc
// @Summary      Obtener ajuste
// @Tags         adjustments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ajuste"
// @Success      200  {object}  dto.AdjustmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/adjustments/{id} [get]
func (h *AdjustmentHandler) GetByID(c *fiber.Ctx) error {
	companyID, _, ok := identity(c)
	if !ok {
		return nil
	}
	a, err := h.uc.GetAdjustment(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(toAdjustmentResponse(a))
}

// Apply godoc
// @Summary      Aplicar ajuste
// @Description  Falla con STALE_COUNT si el stock cambió desde el conteo.
// @Tags         adjustments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ajuste"
// @Success      200  {object}  dto.AdjustmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/adjustments/{id}/apply [post]
func (h *AdjustmentHandler) Apply(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return nil
	}
	a, err := h.uc.ApplyAdjustment(c.Context(), companyID, userID, c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(toAdjustmentResponse(a))
}
