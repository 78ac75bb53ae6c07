package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shipment despacho generado al confirmar una lista de alistamiento. Inmutable.
type Shipment struct {
	ID           string
	SalesOrderID string
	PickListID   string
	WarehouseID  string
	Lines        []ShipmentLine
	CreatedAt    time.Time
	CreatedBy    string
}

// ShipmentLine cantidad despachada por producto y filas de stock consumidas.
type ShipmentLine struct {
	ProductID    string
	Quantity     decimal.Decimal
	StockItemIDs []string
}
