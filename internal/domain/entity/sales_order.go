package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineStatus estado de asignación/despacho de una línea de pedido.
type LineStatus string

const (
	LineUnallocated        LineStatus = "UNALLOCATED"
	LinePartiallyCommitted LineStatus = "PARTIALLY_COMMITTED"
	LineFullyCommitted     LineStatus = "FULLY_COMMITTED"
	LinePartiallyShipped   LineStatus = "PARTIALLY_SHIPPED"
	LineShipped            LineStatus = "SHIPPED"
)

// SalesOrder pedido de venta registrado por el módulo de ventas.
type SalesOrder struct {
	ID                     string
	CompanyID              string
	Reference              string // número de pedido del módulo de ventas
	FulfillmentWarehouseID string
	Lines                  []*SalesOrderLine
	CreatedAt              time.Time
}

// SalesOrderLine línea de pedido contra la que se compromete stock.
type SalesOrderLine struct {
	ID                    string
	SalesOrderID          string
	ProductID             string
	OrderedQuantity       decimal.Decimal
	ShippedQuantity       decimal.Decimal
	CommittedStockItemIDs []string
	Status                LineStatus
	UpdatedAt             time.Time
}

// Clone devuelve una copia independiente.
func (l *SalesOrderLine) Clone() *SalesOrderLine {
	c := *l
	c.CommittedStockItemIDs = append([]string(nil), l.CommittedStockItemIDs...)
	return &c
}
