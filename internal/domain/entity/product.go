package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrackingMode define cómo se traza el stock de un producto.
type TrackingMode string

const (
	TrackingNone   TrackingMode = "NONE"   // cantidad agregada por bodega
	TrackingSerial TrackingMode = "SERIAL" // una fila por unidad (cantidad 1)
	TrackingBatch  TrackingMode = "BATCH"  // una fila por lote, con vencimiento
)

// Valid indica si el modo de trazabilidad es conocido.
func (m TrackingMode) Valid() bool {
	switch m {
	case TrackingNone, TrackingSerial, TrackingBatch:
		return true
	}
	return false
}

// Product representa un producto o SKU del inventario (multi-bodega).
// Cost es promedio ponderado calculado desde las recepciones; el stock vive en StockItem.
type Product struct {
	ID                string
	CompanyID         string
	SKU               string // código único por empresa
	Name              string
	Description       string
	TrackingMode      TrackingMode
	LowStockThreshold decimal.Decimal
	Cost              decimal.Decimal
	UnitMeasure       string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Tracked indica si el producto exige serie o lote.
func (p *Product) Tracked() bool {
	return p.TrackingMode == TrackingSerial || p.TrackingMode == TrackingBatch
}
