package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio. Los handlers HTTP los traducen a códigos de error para la UI.
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrForbidden     = errors.New("acceso denegado")
	ErrConflict      = errors.New("conflicto con el estado actual")
	ErrNothingToPick = errors.New("no hay stock comprometido pendiente de alistar")

	// Taxonomía del motor de inventario.
	ErrInvalidMovement     = errors.New("movimiento de inventario inválido")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrStaleCount          = errors.New("conteo desactualizado: la cantidad esperada ya no coincide")
	ErrInvariantViolation  = errors.New("violación de invariante del libro de inventario")
	ErrConcurrencyConflict = errors.New("conflicto de concurrencia, reintente")
	ErrInvalidTransition   = errors.New("transición de estado no permitida")
	ErrStalePickList       = errors.New("lista de alistamiento desactualizada")
)

// InsufficientStockError detalla un decremento o reserva que no se puede cubrir.
type InsufficientStockError struct {
	ProductID   string
	WarehouseID string
	Requested   decimal.Decimal
	Available   decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para producto %s en bodega %s: solicitado %s, disponible %s",
		e.ProductID, e.WarehouseID, e.Requested.String(), e.Available.String())
}

// Is permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Is(target error) bool { return target == ErrInsufficientStock }

// StaleCountError indica que la cantidad esperada de un ajuste no coincide con el saldo vivo.
type StaleCountError struct {
	ProductID   string
	WarehouseID string
	Expected    decimal.Decimal
	Actual      decimal.Decimal
}

func (e *StaleCountError) Error() string {
	return fmt.Sprintf("conteo desactualizado para producto %s en bodega %s: esperado %s, actual %s",
		e.ProductID, e.WarehouseID, e.Expected.String(), e.Actual.String())
}

func (e *StaleCountError) Is(target error) bool { return target == ErrStaleCount }

// InvariantViolationError indica corrupción del libro (stock físico/comprometido inconsistente).
// Siempre debe registrarse para seguimiento de operaciones.
type InvariantViolationError struct {
	ProductID   string
	WarehouseID string
	Detail      string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("violación de invariante (producto %s, bodega %s): %s", e.ProductID, e.WarehouseID, e.Detail)
}

func (e *InvariantViolationError) Is(target error) bool { return target == ErrInvariantViolation }
