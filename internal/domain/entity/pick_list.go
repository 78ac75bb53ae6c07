package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una lista de alistamiento.
const (
	PickListOpen      = "OPEN"
	PickListConfirmed = "CONFIRMED"
)

// PickList foto del stock comprometido de un pedido, entregada a bodega para alistar.
type PickList struct {
	ID           string
	SalesOrderID string
	Lines        []PickListLine
	Status       string
	ShipmentID   string
	CreatedAt    time.Time
	ConfirmedAt  *time.Time
}

// PickListLine una fila de stock comprometida a alistar.
type PickListLine struct {
	StockItemID    string
	OrderLineID    string
	ProductID      string
	QuantityToPick decimal.Decimal
	SerialNumber   string
	BatchNumber    string
	ExpiryDate     *time.Time
}
