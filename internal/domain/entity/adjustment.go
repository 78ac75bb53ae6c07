package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustmentReason motivo de un ajuste de inventario.
type AdjustmentReason string

const (
	ReasonStocktake  AdjustmentReason = "STOCKTAKE"
	ReasonDamage     AdjustmentReason = "DAMAGE"
	ReasonTheft      AdjustmentReason = "THEFT"
	ReasonCorrection AdjustmentReason = "CORRECTION"
	ReasonOther      AdjustmentReason = "OTHER"
)

// Valid indica si el motivo es conocido.
func (r AdjustmentReason) Valid() bool {
	switch r {
	case ReasonStocktake, ReasonDamage, ReasonTheft, ReasonCorrection, ReasonOther:
		return true
	}
	return false
}

// Estados de un ajuste.
const (
	AdjustmentDraft   = "DRAFT"
	AdjustmentApplied = "APPLIED"
)

// InventoryAdjustment conciliación de cantidades contadas contra esperadas en una bodega.
type InventoryAdjustment struct {
	ID          string
	CompanyID   string
	Date        time.Time
	WarehouseID string
	Reason      AdjustmentReason
	Lines       []AdjustmentLine
	Status      string
	AppliedAt   *time.Time
	CreatedAt   time.Time
	CreatedBy   string
}

// AdjustmentLine línea de conteo. SerialNumbers/BatchNumber/ExpiryDate describen las unidades
// sobrantes de productos con trazabilidad.
type AdjustmentLine struct {
	ProductID        string
	ExpectedQuantity decimal.Decimal
	CountedQuantity  decimal.Decimal
	SerialNumbers    []string
	BatchNumber      string
	ExpiryDate       *time.Time
}

// Delta devuelve contado - esperado.
func (l AdjustmentLine) Delta() decimal.Decimal {
	return l.CountedQuantity.Sub(l.ExpectedQuantity)
}
