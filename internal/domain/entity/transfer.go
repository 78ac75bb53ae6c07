package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un traslado entre bodegas.
const (
	TransferDraft     = "DRAFT"
	TransferCompleted = "COMPLETED"
)

// InventoryTransfer traslado de mercancía entre dos bodegas. Inmutable una vez completado.
type InventoryTransfer struct {
	ID              string
	CompanyID       string
	Date            time.Time
	FromWarehouseID string
	ToWarehouseID   string
	Lines           []TransferLine
	Status          string
	Notes           string
	CompletedAt     *time.Time
	CreatedAt       time.Time
	CreatedBy       string
}

// TransferLine línea de traslado.
type TransferLine struct {
	ProductID string
	Quantity  decimal.Decimal
}
