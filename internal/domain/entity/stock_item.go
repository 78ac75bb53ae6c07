package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/domain"
)

// StockStatus estado de una fila de stock.
type StockStatus string

const (
	StockAvailable StockStatus = "AVAILABLE"
	StockCommitted StockStatus = "COMMITTED"
	StockDamaged   StockStatus = "DAMAGED"
	StockInTransit StockStatus = "IN_TRANSIT"
)

// stockTransitions transiciones permitidas entre estados.
var stockTransitions = map[StockStatus][]StockStatus{
	StockAvailable: {StockCommitted, StockDamaged, StockInTransit},
	StockCommitted: {StockAvailable},
	StockDamaged:   {StockAvailable},
	StockInTransit: {StockAvailable},
}

// Valid indica si el estado es conocido.
func (s StockStatus) Valid() bool {
	_, ok := stockTransitions[s]
	return ok
}

// CanTransitionTo indica si la transición s → to está permitida.
func (s StockStatus) CanTransitionTo(to StockStatus) bool {
	for _, t := range stockTransitions[s] {
		if t == to {
			return true
		}
	}
	return false
}

// CountsAsPhysical indica si la fila suma al stock físico (lo averiado no).
func (s StockStatus) CountsAsPhysical() bool {
	return s == StockAvailable || s == StockCommitted || s == StockInTransit
}

// StockItem fila materializada de stock por (producto, bodega): el agregado de un producto sin
// trazabilidad, una unidad serializada o un lote. Solo se modifica a través del libro.
type StockItem struct {
	ID           string
	ProductID    string
	WarehouseID  string
	Status       StockStatus
	Quantity     decimal.Decimal
	SerialNumber string
	BatchNumber  string
	ExpiryDate   *time.Time
	OrderLineID  string // línea de pedido a la que está comprometida
	Version      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TransitionTo cambia el estado respetando la máquina de estados.
// orderLineID es obligatorio al comprometer y se limpia al salir de COMMITTED.
func (i *StockItem) TransitionTo(to StockStatus, orderLineID string) error {
	if !i.Status.CanTransitionTo(to) {
		return domain.ErrInvalidTransition
	}
	if to == StockCommitted {
		if orderLineID == "" {
			return domain.ErrInvalidTransition
		}
		i.OrderLineID = orderLineID
	} else {
		i.OrderLineID = ""
	}
	i.Status = to
	return nil
}

// SameLot indica si dos filas corresponden a la misma serie/lote/vencimiento.
func (i *StockItem) SameLot(serial, batch string, expiry *time.Time) bool {
	if i.SerialNumber != serial || i.BatchNumber != batch {
		return false
	}
	if i.ExpiryDate == nil || expiry == nil {
		return i.ExpiryDate == nil && expiry == nil
	}
	return i.ExpiryDate.Equal(*expiry)
}

// Clone devuelve una copia independiente.
func (i *StockItem) Clone() *StockItem {
	c := *i
	if i.ExpiryDate != nil {
		e := *i.ExpiryDate
		c.ExpiryDate = &e
	}
	return &c
}
