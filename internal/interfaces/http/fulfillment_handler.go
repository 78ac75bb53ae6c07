package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	app "github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// FulfillmentHandler pedidos, asignación, alistamiento y despacho (protegido).
type FulfillmentHandler struct {
	uc        *app.ReservationUseCase
	printouts *app.PrintoutUseCase
	log       *logger.Logger
}

// NewFulfillmentHandler construye el handler.
func NewFulfillmentHandler(uc *app.ReservationUseCase, printouts *app.PrintoutUseCase, log *logger.Logger) *FulfillmentHandler {
	return &FulfillmentHandler{uc: uc, printouts: printouts, log: log}
}

// RegisterSalesOrder godoc
// @Summary      Registrar pedido de venta
// @Description  Lo llama el módulo de ventas. Sin fulfillment_warehouse_id se usa la bodega predeterminada.
// @Tags         fulfillment
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterSalesOrderRequest  true  "Pedido"
// @Success      201   {object}  dto.SalesOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales-orders [post]
func (h *FulfillmentHandler) RegisterSalesOrder(c *fiber.Ctx) error {
	companyID, _, ok := identity(c)
	if !ok {
		return nil
	}
	var in dto.RegisterSalesOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	draft := app.SalesOrderDraft{
		CompanyID:              companyID,
		Reference:              in.Reference,
		FulfillmentWarehouseID: in.FulfillmentWarehouseID,
	}
	for _, l := range in.Lines {
		draft.Lines = append(draft.Lines, app.SalesOrderLineDraft{ProductID: l.ProductID, OrderedQuantity: l.OrderedQuantity})
	}
	o, err := h.uc.RegisterSalesOrder(c.Context(), draft)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toSalesOrderResponse(o))
}

// GetSalesOrder godoc
// @Summary      Obtener pedido con el estado de sus líneas
// @Tags         fulfillment
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.SalesOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales-orders/{id} [get]
func (h *FulfillmentHandler) GetSalesOrder(c *fiber.Ctx) error {
	companyID, _, ok := identity(c)
	if !ok {
		return nil
	}
	o, err := h.uc.GetSalesOrder(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(toSalesOrderResponse(o))
}

// Allocate godoc
// @Summary      Comprometer stock para una línea de pedido
// @Description  FEFO sobre la bodega de despacho. Con allow_partial compromete lo disponible.
// @Tags         fulfillment
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID de la línea"
// @Param        body  body  dto.AllocateRequest  true  "Cantidad"
// @Success      200   {object}  dto.AllocationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/order-lines/{id}/allocate [post]
func (h *FulfillmentHandler) Allocate(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return nil
	}
	var in dto.AllocateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	res, err := h.uc.Allocate(c.Context(), companyID, userID, c.Params("id"), in.Quantity, app.AllocateOptions{
		AllowPartial:   in.AllowPartial,
		IdempotencyKey: in.IdempotencyKey,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(toAllocationResponse(res))
}

// ReleaseLine godoc
// @Summary      Liberar lo comprometido de una línea
// @Tags         fulfillment
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la línea"
// @Success      200  {object}  dto.ReleaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/order-lines/{id}/release [post]
func (h *FulfillmentHandler) ReleaseLine(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return nil
	}
	res, err := h.uc.Release(c.Context(), companyID, userID, c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ReleaseResponse{OrderLineID: res.OrderLineID, Released: res.Released})
}

// ReleaseOrder godoc
// @Summary      Liberar todo lo comprometido de un pedido
// @Description  Para pedidos cancelados.
// @Tags         fulfillment
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {array}   dto.ReleaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales-orders/{id}/release [post]
func (h *FulfillmentHandler) ReleaseOrder(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return nil
	}
	results, err := h.uc.ReleaseOrder(c.Context(), companyID, userID, c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	out := make([]dto.ReleaseResponse, 0, len(results))
	for _, r := range results {
		out = append(out, dto.ReleaseResponse{OrderLineID: r.OrderLineID, Released: r.Released})
	}
	return c.JSON(out)
}

// CreatePickList godoc
// @Summary      Generar lista de alistamiento
// @Description  Incluye lo comprometido que no está en otra lista abierta.
// @Tags         fulfillment
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      201  {object}  dto.PickListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sales-orders/{id}/pick-lists [post]
func (h *FulfillmentHandler) CreatePickList(c *fiber.Ctx) error {
	companyID, _, ok := identity(c)
	if !ok {
		return nil
	}
	pl, err := h.uc.CreatePickList(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toPickListResponse(pl))
}

// GetPickList godoc
// @Summary      Obtener lista de alistamiento
// @Tags         fulfillment
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la lista"
// @Success      200  {object}  dto.PickListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pick-lists/{id} [get]
func (h *FulfillmentHandler) GetPickList(c *fiber.Ctx) error {
	companyID, _, ok := identity(c)
	if !ok {
		return nil
	}
	pl, err := h.uc.GetPickList(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(toPickListResponse(pl))
}

// PickListPDF godoc
// @Summary      Hoja de alistamiento en PDF
// @Tags         fulfillment
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la lista"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pick-lists/{id}/pdf [get]
func (h *FulfillmentHandler) PickListPDF(c *fiber.Ctx) error {
	companyID, _, ok := identity(c)
	if !ok {
		return nil
	}
	id := c.Params("id")
	pdf, err := h.printouts.PickListPDF(c.Context(), companyID, id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="alistamiento-`+id+`.pdf"`)
	return c.Send(pdf)
}

// ConfirmPickList godoc
// @Summary      Confirmar alistamiento y despachar
// @Description  Consume las filas comprometidas con SHIPMENT_OUT y crea el despacho.
// @Tags         fulfillment
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la lista"
// @Success      201  {object}  dto.ShipmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/pick-lists/{id}/confirm [post]
func (h *FulfillmentHandler) ConfirmPickList(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return nil
	}
	sh, err := h.uc.ConfirmPickList(c.Context(), companyID, userID, c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toShipmentResponse(sh))
}

// GetShipment godoc
// @Summary      Obtener despacho
// @Tags         fulfillment
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del despacho"
// @Success      200  {object}  dto.ShipmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shipments/{id} [get]
func (h *FulfillmentHandler) GetShipment(c *fiber.Ctx) error {
	companyID, _, ok := identity(c)
	if !ok {
		return nil
	}
	sh, err := h.uc.GetShipment(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(toShipmentResponse(sh))
}

// DespatchAdvice godoc
// @Summary      Aviso de despacho UBL 2.1
// @Tags         fulfillment
// @Security     Bearer
// @Produce      application/xml
// @Param        id   path  string  true  "ID del despacho"
// @Success      200  {string}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shipments/{id}/despatch-advice [get]
func (h *FulfillmentHandler) DespatchAdvice(c *fiber.Ctx) error {
	companyID, _, ok := identity(c)
	if !ok {
		return nil
	}
	xml, err := h.printouts.DespatchAdviceXML(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(xml)
}
