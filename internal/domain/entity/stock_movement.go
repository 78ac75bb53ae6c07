package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType tipo de asiento del libro de inventario.
type MovementType string

const (
	MovementReceiptIn          MovementType = "RECEIPT_IN"
	MovementTransferOut        MovementType = "TRANSFER_OUT"
	MovementTransferIn         MovementType = "TRANSFER_IN"
	MovementAdjustmentIncrease MovementType = "ADJUSTMENT_INCREASE"
	MovementAdjustmentDecrease MovementType = "ADJUSTMENT_DECREASE"
	MovementShipmentOut        MovementType = "SHIPMENT_OUT"
	MovementReservationHold    MovementType = "RESERVATION_HOLD"
	MovementReservationRelease MovementType = "RESERVATION_RELEASE"
)

// Valid indica si el tipo es conocido.
func (t MovementType) Valid() bool {
	return t.Sign() != 0
}

// Sign devuelve el signo obligatorio de QuantityChange para el tipo (+1, -1; 0 si es desconocido).
func (t MovementType) Sign() int {
	switch t {
	case MovementReceiptIn, MovementTransferIn, MovementAdjustmentIncrease, MovementReservationHold:
		return 1
	case MovementTransferOut, MovementAdjustmentDecrease, MovementShipmentOut, MovementReservationRelease:
		return -1
	}
	return 0
}

// IsReservation indica si el movimiento solo afecta la cantidad comprometida (no la física).
func (t MovementType) IsReservation() bool {
	return t == MovementReservationHold || t == MovementReservationRelease
}

// Tipos de documento de origen referenciados por un movimiento.
const (
	RefTransfer      = "transfer"
	RefAdjustment    = "adjustment"
	RefSalesOrder    = "sales_order"
	RefPickList      = "pick_list"
	RefPurchaseOrder = "purchase_order"
	RefManual        = "manual"
)

// StockMovement asiento del libro de inventario. Solo se inserta: nunca se actualiza ni se borra;
// las correcciones son movimientos compensatorios.
type StockMovement struct {
	ID             string
	CompanyID      string
	ProductID      string
	WarehouseID    string
	Type           MovementType
	QuantityChange decimal.Decimal // con signo según Type
	Notes          string
	ReferenceType  string
	ReferenceID    string
	StockItemID    string // fila afectada cuando el movimiento es dirigido
	IdempotencyKey string
	CreatedAt      time.Time
	CreatedBy      string
}
