package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	SKU               string          `json:"sku" validate:"required,min=1,max=100"`
	Name              string          `json:"name" validate:"required,min=1,max=200"`
	Description       string          `json:"description"`
	TrackingMode      string          `json:"tracking_mode"` // NONE, SERIAL, BATCH
	LowStockThreshold decimal.Decimal `json:"low_stock_threshold"`
	UnitMeasure       string          `json:"unit_measure"`
}

// UpdateProductRequest entrada para actualizar un producto (sin costo ni trazabilidad).
type UpdateProductRequest struct {
	Name              *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description       *string          `json:"description"`
	LowStockThreshold *decimal.Decimal `json:"low_stock_threshold"`
	UnitMeasure       *string          `json:"unit_measure"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                string          `json:"id"`
	CompanyID         string          `json:"company_id"`
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	TrackingMode      string          `json:"tracking_mode"`
	LowStockThreshold decimal.Decimal `json:"low_stock_threshold"`
	Cost              decimal.Decimal `json:"cost"`
	UnitMeasure       string          `json:"unit_measure"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
