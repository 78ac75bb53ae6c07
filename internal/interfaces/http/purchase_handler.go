package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	app "github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// PurchaseHandler órdenes de compra y recepción de mercancía (protegido).
type PurchaseHandler struct {
	uc  *app.ReceivingUseCase
	log *logger.Logger
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc *app.ReceivingUseCase, log *logger.Logger) *PurchaseHandler {
	return &PurchaseHandler{uc: uc, log: log}
}

// RegisterPurchaseOrder godoc
// @Summary      Registrar orden de compra
// @Tags         purchasing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterPurchaseOrderRequest  true  "Orden de compra"
// @Success      201   {object}  dto.PurchaseOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders [post]
func (h *PurchaseHandler) RegisterPurchaseOrder(c *fiber.Ctx) error {
	companyID, _, ok := identity(c)
	if !ok {
		return nil
	}
	var in dto.RegisterPurchaseOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	draft := app.PurchaseOrderDraft{CompanyID: companyID, Reference: in.Reference, WarehouseID: in.WarehouseID}
	for _, l := range in.Lines {
		draft.Lines = append(draft.Lines, app.PurchaseOrderLineDraft{
			ProductID:       l.ProductID,
			OrderedQuantity: l.OrderedQuantity,
			UnitCost:        l.UnitCost,
		})
	}
	po, err := h.uc.RegisterPurchaseOrder(c.Context(), draft)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toPurchaseOrderResponse(po))
}

// GetPurchaseOrder godoc
// @Summary      Obtener orden de compra con lo recibido
// @Tags         purchasing
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.PurchaseOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id} [get]
func (h *PurchaseHandler) GetPurchaseOrder(c *fiber.Ctx) error {
	companyID, _, ok := identity(c)
	if !ok {
		return nil
	}
	po, err := h.uc.GetPurchaseOrder(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(toPurchaseOrderResponse(po))
}

// Receive godoc
// @Summary      Recibir mercancía
// @Description  Cada línea registra un RECEIPT_IN y recalcula el costo promedio. Reintentos con la
// @Description  misma idempotency_key o el mismo document_ref no duplican la entrada. Una recepción
// @Description  parcial sin ninguno de los dos se rechaza.
// @Tags         purchasing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                           true  "ID de la orden"
// @Param        body  body  dto.ReceivePurchaseOrderRequest  true  "Líneas recibidas"
// @Success      200   {object}  dto.ReceiptResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/receipts [post]
func (h *PurchaseHandler) Receive(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return nil
	}
	var in dto.ReceivePurchaseOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if len(in.Lines) == 0 {
		return validation(c, "lines es requerido")
	}
	lines := make([]app.ReceiptLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, app.ReceiptLine{
			POLineID:       l.POLineID,
			Quantity:       l.Quantity,
			UnitCost:       l.UnitCost,
			SerialNumbers:  l.SerialNumbers,
			BatchNumber:    l.BatchNumber,
			ExpiryDate:     l.ExpiryDate,
			Damaged:        l.Damaged,
			IdempotencyKey: l.IdempotencyKey,
			DocumentRef:    in.DocumentRef,
		})
	}
	res, err := h.uc.ReceivePurchaseOrderItems(c.Context(), companyID, userID, c.Params("id"), lines)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(toReceiptResponse(res))
}
