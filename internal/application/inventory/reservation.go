package inventory

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// ReservationUseCase compromete y libera stock contra líneas de pedido, y gestiona el
// alistamiento y despacho.
type ReservationUseCase struct {
	ledger *Ledger
	read   Repos
	log    *logger.Logger
}

// NewReservationUseCase construye el caso de uso.
func NewReservationUseCase(ledger *Ledger, read Repos, log *logger.Logger) *ReservationUseCase {
	return &ReservationUseCase{ledger: ledger, read: read, log: log}
}

// AllocateOptions opciones de asignación. Sin AllowPartial, si no alcanza el disponible la
// asignación falla completa.
type AllocateOptions struct {
	AllowPartial   bool
	IdempotencyKey string
}

// AllocationResult resultado de una asignación.
type AllocationResult struct {
	OrderLineID string
	Requested   decimal.Decimal
	Committed   decimal.Decimal
	Partial     bool
	Replayed    bool
	MovementID  string
	Line        *entity.SalesOrderLine
}

// Allocate compromete quantity de la bodega de despacho del pedido contra la línea (FEFO).
// Todo se revalida dentro de la transacción.
func (uc *ReservationUseCase) Allocate(ctx context.Context, companyID, userID, orderLineID string, quantity decimal.Decimal, opts AllocateOptions) (*AllocationResult, error) {
	if !quantity.IsPositive() || !inventory.IsWhole(quantity) {
		return nil, fmt.Errorf("%w: cantidad a asignar %s inválida", domain.ErrInvalidMovement, quantity)
	}
	var res *AllocationResult
	err := uc.ledger.run(ctx, func(s *txScope) error {
		line, order, err := lockOrderLine(ctx, s, companyID, orderLineID)
		if err != nil {
			return err
		}
		res = &AllocationResult{OrderLineID: line.ID, Requested: quantity}

		if opts.IdempotencyKey != "" {
			prev, err := s.Movements.GetByIdempotencyKey(ctx, opts.IdempotencyKey)
			if err != nil {
				return err
			}
			if prev != nil {
				if prev.Type != entity.MovementReservationHold || prev.ReferenceID != order.ID || prev.ProductID != line.ProductID {
					return fmt.Errorf("%w: llave de idempotencia %s ya usada con otro contenido", domain.ErrInvalidMovement, opts.IdempotencyKey)
				}
				res.Committed = prev.QuantityChange
				res.Partial = prev.QuantityChange.LessThan(quantity)
				res.Replayed = true
				res.MovementID = prev.ID
				res.Line = line
				return nil
			}
		}

		key := repository.StockKey{ProductID: line.ProductID, WarehouseID: order.FulfillmentWarehouseID}
		if err := s.Locks.Lock(ctx, key); err != nil {
			return err
		}

		lineItems, err := s.Items.ListByOrderLine(ctx, line.ID)
		if err != nil {
			return err
		}
		committed, _ := inventory.CommittedTo(lineItems, line.ID)
		outstanding := inventory.Outstanding(line.OrderedQuantity, committed, line.ShippedQuantity)
		if quantity.GreaterThan(outstanding) {
			return fmt.Errorf("%w: se piden %s y la línea solo tiene %s pendientes", domain.ErrInvalidMovement, quantity, outstanding)
		}

		items, err := s.Items.ListByProductWarehouse(ctx, key.ProductID, key.WarehouseID)
		if err != nil {
			return err
		}
		available := decimal.Zero
		for _, it := range items {
			if it.Status == entity.StockAvailable {
				available = available.Add(it.Quantity)
			}
		}
		target := quantity
		if available.LessThan(quantity) {
			if !opts.AllowPartial || !available.IsPositive() {
				return &domain.InsufficientStockError{ProductID: key.ProductID, WarehouseID: key.WarehouseID, Requested: quantity, Available: available}
			}
			target = available
		}

		r, err := uc.ledger.append(ctx, s, MovementInput{
			CompanyID:      companyID,
			UserID:         userID,
			ProductID:      key.ProductID,
			WarehouseID:    key.WarehouseID,
			Type:           entity.MovementReservationHold,
			QuantityChange: target,
			Notes:          "reserva línea " + line.ID,
			ReferenceType:  entity.RefSalesOrder,
			ReferenceID:    order.ID,
			IdempotencyKey: opts.IdempotencyKey,
			OrderLineID:    line.ID,
		})
		if err != nil {
			return err
		}
		if err := uc.refreshLine(ctx, s, line); err != nil {
			return err
		}
		res.Committed = target
		res.Partial = target.LessThan(quantity)
		res.MovementID = r.Movement.ID
		res.Line = line
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("order_line_id", orderLineID).Str("requested", quantity.String()).
		Str("committed", res.Committed.String()).Bool("partial", res.Partial).Msg("stock comprometido")
	return res, nil
}

// ReleaseResult cantidad devuelta a disponible.
type ReleaseResult struct {
	OrderLineID string
	Released    decimal.Decimal
	Line        *entity.SalesOrderLine
}

// Release devuelve a disponible todo lo comprometido a la línea. Sin compromiso no hace nada.
func (uc *ReservationUseCase) Release(ctx context.Context, companyID, userID, orderLineID string) (*ReleaseResult, error) {
	var res *ReleaseResult
	err := uc.ledger.run(ctx, func(s *txScope) error {
		line, order, err := lockOrderLine(ctx, s, companyID, orderLineID)
		if err != nil {
			return err
		}
		if err := s.Locks.Lock(ctx, repository.StockKey{ProductID: line.ProductID, WarehouseID: order.FulfillmentWarehouseID}); err != nil {
			return err
		}
		res, err = uc.releaseLine(ctx, s, companyID, userID, order, line)
		return err
	})
	if err != nil {
		return nil, err
	}
	if res.Released.IsPositive() {
		uc.log.Info().Str("order_line_id", orderLineID).Str("released", res.Released.String()).Msg("reserva liberada")
	}
	return res, nil
}

// ReleaseOrder libera todas las líneas de un pedido en una sola transacción (cancelación).
func (uc *ReservationUseCase) ReleaseOrder(ctx context.Context, companyID, userID, orderID string) ([]*ReleaseResult, error) {
	var results []*ReleaseResult
	err := uc.ledger.run(ctx, func(s *txScope) error {
		results = nil
		order, err := s.SalesOrders.GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil || order.CompanyID != companyID {
			return domain.ErrNotFound
		}
		ids := make([]string, 0, len(order.Lines))
		keys := make([]repository.StockKey, 0, len(order.Lines))
		for _, l := range order.Lines {
			ids = append(ids, l.ID)
			keys = append(keys, repository.StockKey{ProductID: l.ProductID, WarehouseID: order.FulfillmentWarehouseID})
		}
		lines, err := lockLines(ctx, s, ids)
		if err != nil {
			return err
		}
		if err := lockKeys(ctx, s, keys); err != nil {
			return err
		}
		for _, l := range order.Lines {
			r, err := uc.releaseLine(ctx, s, companyID, userID, order, lines[l.ID])
			if err != nil {
				return err
			}
			results = append(results, r)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("sales_order_id", orderID).Int("lines", len(results)).Msg("pedido liberado")
	return results, nil
}

func (uc *ReservationUseCase) releaseLine(ctx context.Context, s *txScope, companyID, userID string, order *entity.SalesOrder, line *entity.SalesOrderLine) (*ReleaseResult, error) {
	items, err := s.Items.ListByOrderLine(ctx, line.ID)
	if err != nil {
		return nil, err
	}
	committed, _ := inventory.CommittedTo(items, line.ID)
	res := &ReleaseResult{OrderLineID: line.ID, Released: committed, Line: line}
	if !committed.IsPositive() {
		return res, nil
	}
	if _, err := uc.ledger.append(ctx, s, MovementInput{
		CompanyID:      companyID,
		UserID:         userID,
		ProductID:      line.ProductID,
		WarehouseID:    order.FulfillmentWarehouseID,
		Type:           entity.MovementReservationRelease,
		QuantityChange: committed.Neg(),
		Notes:          "liberación línea " + line.ID,
		ReferenceType:  entity.RefSalesOrder,
		ReferenceID:    order.ID,
		OrderLineID:    line.ID,
	}); err != nil {
		return nil, err
	}
	return res, uc.refreshLine(ctx, s, line)
}

// lockOrderLine bloquea la línea y devuelve su pedido, verificando la empresa.
func lockOrderLine(ctx context.Context, s *txScope, companyID, orderLineID string) (*entity.SalesOrderLine, *entity.SalesOrder, error) {
	line, err := s.SalesOrders.GetLineForUpdate(ctx, orderLineID)
	if err != nil {
		return nil, nil, err
	}
	if line == nil {
		return nil, nil, fmt.Errorf("línea de pedido %s: %w", orderLineID, domain.ErrNotFound)
	}
	order, err := s.SalesOrders.GetByID(ctx, line.SalesOrderID)
	if err != nil {
		return nil, nil, err
	}
	if order == nil || order.CompanyID != companyID {
		return nil, nil, fmt.Errorf("línea de pedido %s: %w", orderLineID, domain.ErrNotFound)
	}
	return line, order, nil
}

// lockLines bloquea las líneas de pedido en orden de ID. Orden de bloqueo en toda operación:
// pedido, líneas, llaves de stock.
func lockLines(ctx context.Context, s *txScope, ids []string) (map[string]*entity.SalesOrderLine, error) {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	out := make(map[string]*entity.SalesOrderLine, len(sorted))
	for _, id := range sorted {
		if _, ok := out[id]; ok {
			continue
		}
		line, err := s.SalesOrders.GetLineForUpdate(ctx, id)
		if err != nil {
			return nil, err
		}
		if line == nil {
			return nil, fmt.Errorf("línea de pedido %s: %w", id, domain.ErrNotFound)
		}
		out[id] = line
	}
	return out, nil
}

// refreshLine recalcula filas comprometidas y estado de la línea desde el stock vivo.
func (uc *ReservationUseCase) refreshLine(ctx context.Context, s *txScope, line *entity.SalesOrderLine) error {
	items, err := s.Items.ListByOrderLine(ctx, line.ID)
	if err != nil {
		return err
	}
	committed, ids := inventory.CommittedTo(items, line.ID)
	line.CommittedStockItemIDs = ids
	line.Status = inventory.LineStatusFor(line.OrderedQuantity, committed, line.ShippedQuantity)
	line.UpdatedAt = uc.ledger.now()
	return s.SalesOrders.UpdateLine(ctx, line)
}
