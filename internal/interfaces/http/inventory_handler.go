package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	app "github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// InventoryHandler maneja movimientos manuales, consultas de stock y bajo stock (protegido).
type InventoryHandler struct {
	ledger       *app.Ledger
	availability *app.AvailabilityUseCase
	lowStock     *app.LowStockUseCase
	log          *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(ledger *app.Ledger, availability *app.AvailabilityUseCase, lowStock *app.LowStockUseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{ledger: ledger, availability: availability, lowStock: lowStock, log: log}
}

// AppendMovement godoc
// @Summary      Registrar movimiento manual
// @Description  Solo RECEIPT_IN, ADJUSTMENT_INCREASE y ADJUSTMENT_DECREASE. Traslados, reservas y
// @Description  despachos se registran desde sus documentos.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AppendMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) AppendMovement(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return nil
	}
	var in dto.AppendMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.ProductID == "" || in.WarehouseID == "" {
		return validation(c, "product_id y warehouse_id son requeridos")
	}
	m, err := h.ledger.AppendMovement(c.Context(), app.MovementInput{
		CompanyID:      companyID,
		UserID:         userID,
		ProductID:      in.ProductID,
		WarehouseID:    in.WarehouseID,
		Type:           entity.MovementType(in.Type),
		QuantityChange: in.QuantityChange,
		Notes:          in.Notes,
		ReferenceType:  entity.RefManual,
		IdempotencyKey: in.IdempotencyKey,
		StockItemID:    in.StockItemID,
		Units:          movementUnits(in),
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(m))
}

// movementUnits series o lote del cuerpo. Sin ninguno el ledger trata el producto como granel.
func movementUnits(in dto.AppendMovementRequest) []inventory.Unit {
	if len(in.SerialNumbers) > 0 {
		units := inventory.SerialUnits(in.SerialNumbers)
		for i := range units {
			units[i].ExpiryDate = in.ExpiryDate
		}
		return units
	}
	if in.BatchNumber != "" {
		return []inventory.Unit{{Quantity: in.QuantityChange.Abs(), BatchNumber: in.BatchNumber, ExpiryDate: in.ExpiryDate}}
	}
	return nil
}

// ListMovements godoc
// @Summary      Consultar el libro de movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id    query  string  false  "Producto"
// @Param        warehouse_id  query  string  false  "Bodega"
// @Param        reference_id  query  string  false  "Documento origen"
// @Param        from          query  string  false  "Desde (RFC3339)"
// @Param        to            query  string  false  "Hasta (RFC3339)"
// @Param        limit         query  int     false  "Límite"  default(20)
// @Param        offset        query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	companyID, _, ok := identity(c)
	if !ok {
		return nil
	}
	limit, offset := page(c)
	filter := repository.MovementFilter{
		CompanyID:   companyID,
		ProductID:   c.Query("product_id"),
		WarehouseID: c.Query("warehouse_id"),
		ReferenceID: c.Query("reference_id"),
		Limit:       limit,
		Offset:      offset,
	}
	var err error
	if filter.From, err = queryTime(c, "from"); err != nil {
		return validation(c, "from debe ser RFC3339")
	}
	if filter.To, err = queryTime(c, "to"); err != nil {
		return validation(c, "to debe ser RFC3339")
	}
	list, err := h.ledger.ListMovements(c.Context(), filter)
	if err != nil {
		return writeError(c, h.log, err)
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMovementResponse(m))
	}
	return c.JSON(dto.MovementListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}})
}

func queryTime(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetStock godoc
// @Summary      Stock de un producto
// @Description  Físico, comprometido, disponible y averiado. Sin warehouse_id suma todas las bodegas.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id    path   string  true   "Producto"
// @Param        warehouse_id  query  string  false  "Bodega"
// @Success      200  {object}  dto.StockInfoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/stock/{product_id} [get]
func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	companyID, _, ok := identity(c)
	if !ok {
		return nil
	}
	productID, warehouseID := c.Params("product_id"), c.Query("warehouse_id")
	info, err := h.availability.GetStockInfo(c.Context(), companyID, productID, warehouseID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.StockInfoResponse{
		ProductID:     productID,
		WarehouseID:   warehouseID,
		Physical:      info.Physical,
		Committed:     info.Committed,
		Available:     info.Available,
		Damaged:       info.Damaged,
		LedgerBalance: info.LedgerBalance,
	})
}

// LedgerCheck godoc
// @Summary      Verificar el libro contra el stock vivo
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id    query  string  true  "Producto"
// @Param        warehouse_id  query  string  true  "Bodega"
// @Success      200  {object}  dto.LedgerCheckResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/ledger-check [get]
func (h *InventoryHandler) LedgerCheck(c *fiber.Ctx) error {
	companyID, _, ok := identity(c)
	if !ok {
		return nil
	}
	check, err := h.availability.VerifyLedger(c.Context(), companyID, c.Query("product_id"), c.Query("warehouse_id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.LedgerCheckResponse{
		ProductID:     check.ProductID,
		WarehouseID:   check.WarehouseID,
		LedgerBalance: check.LedgerBalance,
		ItemsBalance:  check.ItemsBalance,
		Consistent:    check.LedgerBalance.Equal(check.ItemsBalance),
	})
}

// ListLowStock godoc
// @Summary      Productos bajo el punto de reorden
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "Bodega. Vacío = stock global."
// @Success      200  {array}   dto.LowStockItemDTO
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) ListLowStock(c *fiber.Ctx) error {
	companyID, _, ok := identity(c)
	if !ok {
		return nil
	}
	list, err := h.lowStock.ListLowStock(c.Context(), companyID, c.Query("warehouse_id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	if list == nil {
		list = []dto.LowStockItemDTO{}
	}
	return c.JSON(list)
}
