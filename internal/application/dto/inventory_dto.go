package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AppendMovementRequest body para POST /api/inventory/movements (entradas y correcciones sueltas).
type AppendMovementRequest struct {
	ProductID      string          `json:"product_id"`
	WarehouseID    string          `json:"warehouse_id"`
	Type           string          `json:"type"` // RECEIPT_IN, ADJUSTMENT_INCREASE, ADJUSTMENT_DECREASE
	QuantityChange decimal.Decimal `json:"quantity_change"`
	Notes          string          `json:"notes"`
	IdempotencyKey string          `json:"idempotency_key"`
	StockItemID    string          `json:"stock_item_id,omitempty"`
	SerialNumbers  []string        `json:"serial_numbers,omitempty"`
	BatchNumber    string          `json:"batch_number,omitempty"`
	ExpiryDate     *time.Time      `json:"expiry_date,omitempty"`
}

// MovementResponse asiento del libro.
type MovementResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	WarehouseID    string          `json:"warehouse_id"`
	Type           string          `json:"type"`
	QuantityChange decimal.Decimal `json:"quantity_change"`
	Notes          string          `json:"notes,omitempty"`
	ReferenceType  string          `json:"reference_type,omitempty"`
	ReferenceID    string          `json:"reference_id,omitempty"`
	StockItemID    string          `json:"stock_item_id,omitempty"`
	IdempotencyKey string          `json:"idempotency_key,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	CreatedBy      string          `json:"created_by,omitempty"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// StockInfoResponse cantidades de un producto en una bodega (o en todas).
// LedgerBalance es la cantidad esperada con la que debe crearse un ajuste (físico + averiado).
type StockInfoResponse struct {
	ProductID     string          `json:"product_id"`
	WarehouseID   string          `json:"warehouse_id,omitempty"`
	Physical      decimal.Decimal `json:"physical"`
	Committed     decimal.Decimal `json:"committed"`
	Available     decimal.Decimal `json:"available"`
	Damaged       decimal.Decimal `json:"damaged"`
	LedgerBalance decimal.Decimal `json:"ledger_balance"`
}

// LedgerCheckResponse resultado de la verificación del libro.
type LedgerCheckResponse struct {
	ProductID     string          `json:"product_id"`
	WarehouseID   string          `json:"warehouse_id"`
	LedgerBalance decimal.Decimal `json:"ledger_balance"`
	ItemsBalance  decimal.Decimal `json:"items_balance"`
	Consistent    bool            `json:"consistent"`
}

// LowStockItemDTO producto por debajo de su umbral de stock bajo.
type LowStockItemDTO struct {
	ProductID          string          `json:"product_id"`
	SKU                string          `json:"sku"`
	ProductName        string          `json:"product_name"`
	WarehouseID        string          `json:"warehouse_id,omitempty"`
	Physical           decimal.Decimal `json:"physical"`
	Committed          decimal.Decimal `json:"committed"`
	Available          decimal.Decimal `json:"available"`
	Threshold          decimal.Decimal `json:"threshold"`
	Deficit            decimal.Decimal `json:"deficit"`             // Threshold - Available
	SuggestedOrderQty  decimal.Decimal `json:"suggested_order_qty"` // Threshold * 1.5 - Available
	UnitCost           decimal.Decimal `json:"unit_cost"`           // costo promedio ponderado
	EstimatedOrderCost decimal.Decimal `json:"estimated_order_cost"`
	Priority           int             `json:"priority"` // 1 = más urgente
}

// ── Traslados ────────────────────────────────────────────────────────────────

// TransferLineDTO línea de traslado.
type TransferLineDTO struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// CreateTransferRequest body para POST /api/transfers.
type CreateTransferRequest struct {
	Date            *time.Time        `json:"date,omitempty"`
	FromWarehouseID string            `json:"from_warehouse_id"`
	ToWarehouseID   string            `json:"to_warehouse_id"`
	Notes           string            `json:"notes"`
	Lines           []TransferLineDTO `json:"lines"`
}

// TransferResponse traslado.
type TransferResponse struct {
	ID              string            `json:"id"`
	Date            time.Time         `json:"date"`
	FromWarehouseID string            `json:"from_warehouse_id"`
	ToWarehouseID   string            `json:"to_warehouse_id"`
	Status          string            `json:"status"`
	Notes           string            `json:"notes,omitempty"`
	Lines           []TransferLineDTO `json:"lines"`
	CompletedAt     *time.Time        `json:"completed_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

// ── Ajustes ──────────────────────────────────────────────────────────────────

// AdjustmentLineDTO línea de conteo.
type AdjustmentLineDTO struct {
	ProductID        string          `json:"product_id"`
	ExpectedQuantity decimal.Decimal `json:"expected_quantity"`
	CountedQuantity  decimal.Decimal `json:"counted_quantity"`
	SerialNumbers    []string        `json:"serial_numbers,omitempty"`
	BatchNumber      string          `json:"batch_number,omitempty"`
	ExpiryDate       *time.Time      `json:"expiry_date,omitempty"`
}

// CreateAdjustmentRequest body para POST /api/adjustments.
type CreateAdjustmentRequest struct {
	Date        *time.Time          `json:"date,omitempty"`
	WarehouseID string              `json:"warehouse_id"`
	Reason      string              `json:"reason"` // STOCKTAKE, DAMAGE, THEFT, CORRECTION, OTHER
	Lines       []AdjustmentLineDTO `json:"lines"`
}

// AdjustmentResponse ajuste.
type AdjustmentResponse struct {
	ID          string              `json:"id"`
	Date        time.Time           `json:"date"`
	WarehouseID string              `json:"warehouse_id"`
	Reason      string              `json:"reason"`
	Status      string              `json:"status"`
	Lines       []AdjustmentLineDTO `json:"lines"`
	AppliedAt   *time.Time          `json:"applied_at,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

// ── Pedidos y alistamiento ───────────────────────────────────────────────────

// SalesOrderLineRequest línea de pedido.
type SalesOrderLineRequest struct {
	ProductID       string          `json:"product_id"`
	OrderedQuantity decimal.Decimal `json:"ordered_quantity"`
}

// RegisterSalesOrderRequest body para POST /api/sales-orders.
type RegisterSalesOrderRequest struct {
	Reference              string                  `json:"reference"`
	FulfillmentWarehouseID string                  `json:"fulfillment_warehouse_id,omitempty"`
	Lines                  []SalesOrderLineRequest `json:"lines"`
}

// SalesOrderLineResponse línea de pedido con su estado de asignación.
type SalesOrderLineResponse struct {
	ID                    string          `json:"id"`
	ProductID             string          `json:"product_id"`
	OrderedQuantity       decimal.Decimal `json:"ordered_quantity"`
	ShippedQuantity       decimal.Decimal `json:"shipped_quantity"`
	CommittedStockItemIDs []string        `json:"committed_stock_item_ids"`
	Status                string          `json:"status"`
}

// SalesOrderResponse pedido.
type SalesOrderResponse struct {
	ID                     string                   `json:"id"`
	Reference              string                   `json:"reference"`
	FulfillmentWarehouseID string                   `json:"fulfillment_warehouse_id"`
	Lines                  []SalesOrderLineResponse `json:"lines"`
	CreatedAt              time.Time                `json:"created_at"`
}

// AllocateRequest body para POST /api/order-lines/:id/allocate.
type AllocateRequest struct {
	Quantity       decimal.Decimal `json:"quantity"`
	AllowPartial   bool            `json:"allow_partial"`
	IdempotencyKey string          `json:"idempotency_key,omitempty"`
}

// AllocationResponse resultado de una asignación.
type AllocationResponse struct {
	OrderLineID string                  `json:"order_line_id"`
	Requested   decimal.Decimal         `json:"requested"`
	Committed   decimal.Decimal         `json:"committed"`
	Partial     bool                    `json:"partial"`
	MovementID  string                  `json:"movement_id,omitempty"`
	Line        *SalesOrderLineResponse `json:"line,omitempty"`
}

// ReleaseResponse resultado de una liberación.
type ReleaseResponse struct {
	OrderLineID string          `json:"order_line_id"`
	Released    decimal.Decimal `json:"released"`
}

// PickListLineResponse fila a alistar.
type PickListLineResponse struct {
	StockItemID    string          `json:"stock_item_id"`
	OrderLineID    string          `json:"order_line_id"`
	ProductID      string          `json:"product_id"`
	QuantityToPick decimal.Decimal `json:"quantity_to_pick"`
	SerialNumber   string          `json:"serial_number,omitempty"`
	BatchNumber    string          `json:"batch_number,omitempty"`
	ExpiryDate     *time.Time      `json:"expiry_date,omitempty"`
}

// PickListResponse lista de alistamiento.
type PickListResponse struct {
	ID           string                 `json:"id"`
	SalesOrderID string                 `json:"sales_order_id"`
	Status       string                 `json:"status"`
	ShipmentID   string                 `json:"shipment_id,omitempty"`
	Lines        []PickListLineResponse `json:"lines"`
	CreatedAt    time.Time              `json:"created_at"`
	ConfirmedAt  *time.Time             `json:"confirmed_at,omitempty"`
}

// ShipmentLineResponse línea de despacho.
type ShipmentLineResponse struct {
	ProductID    string          `json:"product_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	StockItemIDs []string        `json:"stock_item_ids"`
}

// ShipmentResponse despacho.
type ShipmentResponse struct {
	ID           string                 `json:"id"`
	SalesOrderID string                 `json:"sales_order_id"`
	PickListID   string                 `json:"pick_list_id"`
	WarehouseID  string                 `json:"warehouse_id"`
	Lines        []ShipmentLineResponse `json:"lines"`
	CreatedAt    time.Time              `json:"created_at"`
}

// ── Compras ──────────────────────────────────────────────────────────────────

// PurchaseOrderLineRequest línea de compra.
type PurchaseOrderLineRequest struct {
	ProductID       string          `json:"product_id"`
	OrderedQuantity decimal.Decimal `json:"ordered_quantity"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
}

// RegisterPurchaseOrderRequest body para POST /api/purchase-orders.
type RegisterPurchaseOrderRequest struct {
	Reference   string                     `json:"reference"`
	WarehouseID string                     `json:"warehouse_id"`
	Lines       []PurchaseOrderLineRequest `json:"lines"`
}

// PurchaseOrderLineResponse línea de compra con lo recibido.
type PurchaseOrderLineResponse struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"product_id"`
	OrderedQuantity  decimal.Decimal `json:"ordered_quantity"`
	ReceivedQuantity decimal.Decimal `json:"received_quantity"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
}

// PurchaseOrderResponse orden de compra.
type PurchaseOrderResponse struct {
	ID          string                      `json:"id"`
	Reference   string                      `json:"reference"`
	WarehouseID string                      `json:"warehouse_id"`
	Lines       []PurchaseOrderLineResponse `json:"lines"`
	CreatedAt   time.Time                   `json:"created_at"`
}

// ReceiptLineRequest mercancía recibida contra una línea de compra.
type ReceiptLineRequest struct {
	POLineID       string           `json:"po_line_id"`
	Quantity       decimal.Decimal  `json:"quantity"`
	UnitCost       *decimal.Decimal `json:"unit_cost,omitempty"`
	SerialNumbers  []string         `json:"serial_numbers,omitempty"`
	BatchNumber    string           `json:"batch_number,omitempty"`
	ExpiryDate     *time.Time       `json:"expiry_date,omitempty"`
	Damaged        bool             `json:"damaged"`
	IdempotencyKey string           `json:"idempotency_key,omitempty"`
}

// ReceivePurchaseOrderRequest body para POST /api/purchase-orders/:id/receipts.
type ReceivePurchaseOrderRequest struct {
	DocumentRef string               `json:"document_ref,omitempty"`
	Lines       []ReceiptLineRequest `json:"lines"`
}

// ReceiptLineResponse resultado por línea.
type ReceiptLineResponse struct {
	POLineID       string           `json:"po_line_id"`
	Received       decimal.Decimal  `json:"received"`
	ReceivedTotal  decimal.Decimal  `json:"received_total"`
	Skipped        bool             `json:"skipped"`
	OverReceived   bool             `json:"over_received"`
	MovementID     string           `json:"movement_id,omitempty"`
	NewAverageCost *decimal.Decimal `json:"new_average_cost,omitempty"`
}

// ReceiptResponse resultado de una recepción.
type ReceiptResponse struct {
	PurchaseOrderID string                `json:"purchase_order_id"`
	Lines           []ReceiptLineResponse `json:"lines"`
}
