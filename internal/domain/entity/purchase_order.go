package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrder orden de compra registrada por el módulo de compras.
type PurchaseOrder struct {
	ID          string
	CompanyID   string
	Reference   string
	WarehouseID string // bodega destino de la mercancía
	Lines       []*PurchaseOrderLine
	CreatedAt   time.Time
}

// PurchaseOrderLine línea de compra.
type PurchaseOrderLine struct {
	ID               string
	PurchaseOrderID  string
	ProductID        string
	OrderedQuantity  decimal.Decimal
	ReceivedQuantity decimal.Decimal
	UnitCost         decimal.Decimal
	UpdatedAt        time.Time
}

// FullyReceived indica si ya se recibió toda la cantidad pedida.
func (l *PurchaseOrderLine) FullyReceived() bool {
	return l.ReceivedQuantity.GreaterThanOrEqual(l.OrderedQuantity)
}
