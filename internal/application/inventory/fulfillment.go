package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

// SalesOrderDraft pedido que el módulo de ventas registra para asignación.
type SalesOrderDraft struct {
	CompanyID              string
	Reference              string
	FulfillmentWarehouseID string // vacío = bodega predeterminada
	Lines                  []SalesOrderLineDraft
}

// SalesOrderLineDraft línea del pedido.
type SalesOrderLineDraft struct {
	ProductID       string
	OrderedQuantity decimal.Decimal
}

// RegisterSalesOrder registra un pedido con sus líneas en UNALLOCATED.
func (uc *ReservationUseCase) RegisterSalesOrder(ctx context.Context, d SalesOrderDraft) (*entity.SalesOrder, error) {
	if len(d.Lines) == 0 {
		return nil, fmt.Errorf("%w: el pedido no tiene líneas", domain.ErrInvalidInput)
	}
	whID := d.FulfillmentWarehouseID
	if whID == "" {
		list, err := uc.read.Warehouses.ListByCompany(ctx, d.CompanyID, 1000, 0)
		if err != nil {
			return nil, err
		}
		for _, w := range list {
			if w.IsDefault {
				whID = w.ID
				break
			}
		}
		if whID == "" {
			return nil, fmt.Errorf("%w: no hay bodega predeterminada", domain.ErrInvalidInput)
		}
	}
	wh, err := uc.read.Warehouses.GetByID(ctx, whID)
	if err != nil {
		return nil, err
	}
	if wh == nil || wh.CompanyID != d.CompanyID {
		return nil, fmt.Errorf("bodega %s: %w", whID, domain.ErrNotFound)
	}

	now := uc.ledger.now()
	order := &entity.SalesOrder{
		ID:                     uuid.New().String(),
		CompanyID:              d.CompanyID,
		Reference:              d.Reference,
		FulfillmentWarehouseID: whID,
		CreatedAt:              now,
	}
	for _, l := range d.Lines {
		if !l.OrderedQuantity.IsPositive() || !inventory.IsWhole(l.OrderedQuantity) {
			return nil, fmt.Errorf("%w: cantidad pedida %s inválida", domain.ErrInvalidInput, l.OrderedQuantity)
		}
		p, err := uc.read.Products.GetByID(ctx, l.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil || p.CompanyID != d.CompanyID {
			return nil, fmt.Errorf("producto %s: %w", l.ProductID, domain.ErrNotFound)
		}
		order.Lines = append(order.Lines, &entity.SalesOrderLine{
			ID:              uuid.New().String(),
			SalesOrderID:    order.ID,
			ProductID:       l.ProductID,
			OrderedQuantity: l.OrderedQuantity,
			ShippedQuantity: decimal.Zero,
			Status:          entity.LineUnallocated,
			UpdatedAt:       now,
		})
	}
	if err := uc.ledger.run(ctx, func(s *txScope) error {
		return s.SalesOrders.Create(ctx, order)
	}); err != nil {
		return nil, err
	}
	return order, nil
}

// GetSalesOrder obtiene un pedido con sus líneas.
func (uc *ReservationUseCase) GetSalesOrder(ctx context.Context, companyID, id string) (*entity.SalesOrder, error) {
	o, err := uc.read.SalesOrders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil || o.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

// CreatePickList toma una foto del stock comprometido del pedido que aún no está en una lista
// abierta. Sin nada pendiente devuelve ErrNothingToPick.
func (uc *ReservationUseCase) CreatePickList(ctx context.Context, companyID, orderID string) (*entity.PickList, error) {
	var pl *entity.PickList
	err := uc.ledger.run(ctx, func(s *txScope) error {
		order, err := s.SalesOrders.GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil || order.CompanyID != companyID {
			return domain.ErrNotFound
		}
		open, err := s.PickLists.ListOpenByOrder(ctx, order.ID)
		if err != nil {
			return err
		}
		onList := map[string]decimal.Decimal{}
		for _, o := range open {
			for _, l := range o.Lines {
				onList[l.StockItemID] = onList[l.StockItemID].Add(l.QuantityToPick)
			}
		}

		pl = &entity.PickList{
			ID:           uuid.New().String(),
			SalesOrderID: order.ID,
			Status:       entity.PickListOpen,
			CreatedAt:    uc.ledger.now(),
		}
		for _, line := range order.Lines {
			items, err := s.Items.ListByOrderLine(ctx, line.ID)
			if err != nil {
				return err
			}
			inventory.SortFEFO(items)
			for _, it := range items {
				if it.Status != entity.StockCommitted {
					continue
				}
				pending := it.Quantity.Sub(onList[it.ID])
				if !pending.IsPositive() {
					continue
				}
				pl.Lines = append(pl.Lines, entity.PickListLine{
					StockItemID:    it.ID,
					OrderLineID:    line.ID,
					ProductID:      it.ProductID,
					QuantityToPick: pending,
					SerialNumber:   it.SerialNumber,
					BatchNumber:    it.BatchNumber,
					ExpiryDate:     it.ExpiryDate,
				})
			}
		}
		if len(pl.Lines) == 0 {
			return domain.ErrNothingToPick
		}
		return s.PickLists.Create(ctx, pl)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("pick_list_id", pl.ID).Str("sales_order_id", orderID).Int("lines", len(pl.Lines)).Msg("lista de alistamiento creada")
	return pl, nil
}

// ConfirmPickList despacha lo alistado: SHIPMENT_OUT por fila, aumenta lo despachado de cada
// línea, crea el despacho y cierra la lista. Confirmar una lista ya confirmada devuelve el
// mismo despacho.
func (uc *ReservationUseCase) ConfirmPickList(ctx context.Context, companyID, userID, id string) (*entity.Shipment, error) {
	var shipment *entity.Shipment
	replay := false
	err := uc.ledger.run(ctx, func(s *txScope) error {
		pl, err := s.PickLists.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if pl == nil {
			return domain.ErrNotFound
		}
		order, err := s.SalesOrders.GetForUpdate(ctx, pl.SalesOrderID)
		if err != nil {
			return err
		}
		if order == nil || order.CompanyID != companyID {
			return domain.ErrNotFound
		}
		if pl.Status == entity.PickListConfirmed {
			shipment, err = s.Shipments.GetByID(ctx, pl.ShipmentID)
			if err != nil {
				return err
			}
			if shipment == nil {
				return &domain.InvariantViolationError{WarehouseID: order.FulfillmentWarehouseID, Detail: "lista confirmada sin despacho " + pl.ShipmentID}
			}
			replay = true
			return nil
		}

		ids := make([]string, 0, len(pl.Lines))
		keys := make([]repository.StockKey, 0, len(pl.Lines))
		for _, l := range pl.Lines {
			ids = append(ids, l.OrderLineID)
			keys = append(keys, repository.StockKey{ProductID: l.ProductID, WarehouseID: order.FulfillmentWarehouseID})
		}
		lines, err := lockLines(ctx, s, ids)
		if err != nil {
			return err
		}
		if err := lockKeys(ctx, s, keys); err != nil {
			return err
		}

		for _, l := range pl.Lines {
			it, err := s.Items.GetByID(ctx, l.StockItemID)
			if err != nil {
				return err
			}
			if it == nil || it.Status != entity.StockCommitted || it.OrderLineID != l.OrderLineID || it.Quantity.LessThan(l.QuantityToPick) {
				return fmt.Errorf("%w: la fila %s ya no está comprometida como se alistó", domain.ErrStalePickList, l.StockItemID)
			}
		}

		shipment = &entity.Shipment{
			ID:           uuid.New().String(),
			SalesOrderID: order.ID,
			PickListID:   pl.ID,
			WarehouseID:  order.FulfillmentWarehouseID,
			CreatedAt:    uc.ledger.now(),
			CreatedBy:    userID,
		}
		byProduct := map[string]int{}
		for _, l := range pl.Lines {
			line := lines[l.OrderLineID]
			shipped := line.ShippedQuantity.Add(l.QuantityToPick)
			if shipped.GreaterThan(line.OrderedQuantity) {
				return &domain.InvariantViolationError{
					ProductID:   line.ProductID,
					WarehouseID: order.FulfillmentWarehouseID,
					Detail:      fmt.Sprintf("la línea %s despacharía %s de %s pedidos", line.ID, shipped, line.OrderedQuantity),
				}
			}
			if _, err := uc.ledger.append(ctx, s, MovementInput{
				CompanyID:      companyID,
				UserID:         userID,
				ProductID:      l.ProductID,
				WarehouseID:    order.FulfillmentWarehouseID,
				Type:           entity.MovementShipmentOut,
				QuantityChange: l.QuantityToPick.Neg(),
				Notes:          "despacho " + shipment.ID,
				ReferenceType:  entity.RefPickList,
				ReferenceID:    pl.ID,
				IdempotencyKey: fmt.Sprintf("pick:%s:%s", pl.ID, l.StockItemID),
				StockItemID:    l.StockItemID,
				ConsumeOrder:   []entity.StockStatus{entity.StockCommitted},
			}); err != nil {
				return err
			}
			line.ShippedQuantity = shipped
			if err := uc.refreshLine(ctx, s, line); err != nil {
				return err
			}

			idx, ok := byProduct[l.ProductID]
			if !ok {
				idx = len(shipment.Lines)
				byProduct[l.ProductID] = idx
				shipment.Lines = append(shipment.Lines, entity.ShipmentLine{ProductID: l.ProductID, Quantity: decimal.Zero})
			}
			shipment.Lines[idx].Quantity = shipment.Lines[idx].Quantity.Add(l.QuantityToPick)
			shipment.Lines[idx].StockItemIDs = append(shipment.Lines[idx].StockItemIDs, l.StockItemID)
		}
		if err := s.Shipments.Create(ctx, shipment); err != nil {
			return err
		}
		now := uc.ledger.now()
		pl.Status = entity.PickListConfirmed
		pl.ShipmentID = shipment.ID
		pl.ConfirmedAt = &now
		return s.PickLists.Update(ctx, pl)
	})
	if err != nil {
		return nil, err
	}
	if !replay {
		uc.log.Info().Str("pick_list_id", id).Str("shipment_id", shipment.ID).Int("lines", len(shipment.Lines)).Msg("lista de alistamiento confirmada")
	}
	return shipment, nil
}

// GetPickList obtiene una lista de alistamiento.
func (uc *ReservationUseCase) GetPickList(ctx context.Context, companyID, id string) (*entity.PickList, error) {
	pl, err := uc.read.PickLists.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pl == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := uc.GetSalesOrder(ctx, companyID, pl.SalesOrderID); err != nil {
		return nil, err
	}
	return pl, nil
}

// GetShipment obtiene un despacho.
func (uc *ReservationUseCase) GetShipment(ctx context.Context, companyID, id string) (*entity.Shipment, error) {
	sh, err := uc.read.Shipments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sh == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := uc.GetSalesOrder(ctx, companyID, sh.SalesOrderID); err != nil {
		return nil, err
	}
	return sh, nil
}
