package inventory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// Ledger libro de inventario: única vía para cambiar cantidades. Cada asiento se escribe en la
// misma transacción que los cambios sobre stock_items que produce.
type Ledger struct {
	tx        TxRunner
	read      Repos
	publisher MovementPublisher
	log       *logger.Logger
	now       func() time.Time
}

// NewLedger construye el libro. publisher puede ser nil.
func NewLedger(tx TxRunner, read Repos, publisher MovementPublisher, log *logger.Logger) *Ledger {
	return &Ledger{tx: tx, read: read, publisher: publisher, log: log, now: time.Now}
}

// MovementInput asiento a registrar. Units describe series/lotes en incrementos de productos
// con trazabilidad; ConsumeOrder fija el orden de estados a consumir en decrementos.
type MovementInput struct {
	CompanyID      string
	UserID         string
	ProductID      string
	WarehouseID    string
	Type           entity.MovementType
	QuantityChange decimal.Decimal
	Notes          string
	ReferenceType  string
	ReferenceID    string
	IdempotencyKey string
	StockItemID    string
	OrderLineID    string
	Units          []inventory.Unit
	Status         entity.StockStatus
	ConsumeOrder   []entity.StockStatus
}

// appendResult resultado de un asiento dentro de una transacción.
type appendResult struct {
	Movement *entity.StockMovement
	Changes  inventory.ItemChanges
	Replayed bool
}

// txScope repositorios de la transacción en curso y movimientos a publicar tras el commit.
type txScope struct {
	Repos
	movements []*entity.StockMovement
}

// manualTypes tipos que se aceptan por fuera de un documento (traslado, pedido, ajuste).
var manualTypes = map[entity.MovementType]bool{
	entity.MovementReceiptIn:          true,
	entity.MovementAdjustmentIncrease: true,
	entity.MovementAdjustmentDecrease: true,
}

// AppendMovement registra un asiento suelto (entradas iniciales, correcciones). Los traslados,
// reservas y despachos se registran a través de sus propios casos de uso.
func (l *Ledger) AppendMovement(ctx context.Context, in MovementInput) (*entity.StockMovement, error) {
	if !manualTypes[in.Type] {
		return nil, fmt.Errorf("%w: el tipo %s solo se registra desde su documento", domain.ErrInvalidMovement, in.Type)
	}
	if in.ReferenceType == "" {
		in.ReferenceType = entity.RefManual
	}
	var res *appendResult
	err := l.run(ctx, func(s *txScope) error {
		if err := s.Locks.Lock(ctx, repository.StockKey{ProductID: in.ProductID, WarehouseID: in.WarehouseID}); err != nil {
			return err
		}
		r, err := l.append(ctx, s, in)
		res = r
		return err
	})
	if err != nil {
		return nil, err
	}
	l.log.Info().
		Str("movement_id", res.Movement.ID).
		Str("type", string(res.Movement.Type)).
		Str("product_id", res.Movement.ProductID).
		Str("warehouse_id", res.Movement.WarehouseID).
		Str("quantity", res.Movement.QuantityChange.String()).
		Bool("replayed", res.Replayed).
		Msg("movimiento registrado")
	return res.Movement, nil
}

// ListMovements consulta el libro (solo lectura, último estado confirmado).
func (l *Ledger) ListMovements(ctx context.Context, filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	if filter.Limit <= 0 || filter.Limit > 500 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return l.read.Movements.List(ctx, filter)
}

// run ejecuta fn en una transacción y publica los movimientos confirmados.
// El alcance se recrea en cada intento del runner.
func (l *Ledger) run(ctx context.Context, fn func(s *txScope) error) error {
	var scope *txScope
	err := l.tx.Run(ctx, func(r Repos) error {
		scope = &txScope{Repos: r}
		return fn(scope)
	})
	if err != nil {
		var inv *domain.InvariantViolationError
		if errors.As(err, &inv) {
			l.log.Error().Err(err).Str("product_id", inv.ProductID).Str("warehouse_id", inv.WarehouseID).
				Msg("invariante del libro violada, transacción revertida")
		}
		return err
	}
	l.publish(ctx, scope.movements)
	return nil
}

func (l *Ledger) publish(ctx context.Context, movements []*entity.StockMovement) {
	if l.publisher == nil || len(movements) == 0 {
		return
	}
	if err := l.publisher.PublishMovements(ctx, movements); err != nil {
		l.log.Warn().Err(err).Int("movements", len(movements)).Msg("no se pudieron publicar los movimientos")
	}
}

// lockKeys bloquea las llaves en orden canónico, sin repetir.
func lockKeys(ctx context.Context, s *txScope, keys []repository.StockKey) error {
	seen := map[string]bool{}
	uniq := make([]repository.StockKey, 0, len(keys))
	for _, k := range keys {
		if seen[k.String()] {
			continue
		}
		seen[k.String()] = true
		uniq = append(uniq, k)
	}
	sort.Slice(uniq, func(i, j int) bool { return uniq[i].String() < uniq[j].String() })
	return s.Locks.Lock(ctx, uniq...)
}

func validateMovement(in MovementInput) error {
	if !in.Type.Valid() {
		return fmt.Errorf("%w: tipo %q desconocido", domain.ErrInvalidMovement, in.Type)
	}
	if in.ProductID == "" || in.WarehouseID == "" {
		return fmt.Errorf("%w: producto y bodega son obligatorios", domain.ErrInvalidMovement)
	}
	if in.QuantityChange.IsZero() {
		return fmt.Errorf("%w: la cantidad no puede ser cero", domain.ErrInvalidMovement)
	}
	if in.QuantityChange.Sign() != in.Type.Sign() {
		return fmt.Errorf("%w: signo de cantidad inválido para %s", domain.ErrInvalidMovement, in.Type)
	}
	if !inventory.IsWhole(in.QuantityChange) {
		return fmt.Errorf("%w: la cantidad debe ser entera", domain.ErrInvalidMovement)
	}
	if in.Type.IsReservation() && in.OrderLineID == "" {
		return fmt.Errorf("%w: la reserva requiere línea de pedido", domain.ErrInvalidMovement)
	}
	return nil
}

func samePayload(m *entity.StockMovement, in MovementInput) bool {
	return m.ProductID == in.ProductID && m.WarehouseID == in.WarehouseID &&
		m.Type == in.Type && m.QuantityChange.Equal(in.QuantityChange)
}

// append registra un asiento dentro de la transacción s. La llave (producto, bodega) debe
// estar bloqueada por el llamador.
func (l *Ledger) append(ctx context.Context, s *txScope, in MovementInput) (*appendResult, error) {
	if err := validateMovement(in); err != nil {
		return nil, err
	}

	if in.IdempotencyKey != "" {
		prev, err := s.Movements.GetByIdempotencyKey(ctx, in.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if prev != nil {
			if !samePayload(prev, in) {
				return nil, fmt.Errorf("%w: llave de idempotencia %s ya usada con otro contenido", domain.ErrInvalidMovement, in.IdempotencyKey)
			}
			return &appendResult{Movement: prev, Replayed: true}, nil
		}
	}

	product, err := s.Products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || (in.CompanyID != "" && product.CompanyID != in.CompanyID) {
		return nil, fmt.Errorf("producto %s: %w", in.ProductID, domain.ErrNotFound)
	}
	wh, err := s.Warehouses.GetByID(ctx, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil || wh.CompanyID != product.CompanyID {
		return nil, fmt.Errorf("bodega %s: %w", in.WarehouseID, domain.ErrNotFound)
	}

	items, err := s.Items.ListByProductWarehouse(ctx, in.ProductID, in.WarehouseID)
	if err != nil {
		return nil, err
	}

	now := l.now()
	changes, err := planMovement(items, product, in, now)
	if err != nil {
		return nil, err
	}
	if err := applyChanges(ctx, s.Items, changes); err != nil {
		return nil, err
	}

	after, err := s.Items.ListByProductWarehouse(ctx, in.ProductID, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if err := inventory.ComputeStockInfo(after).Check(in.ProductID, in.WarehouseID); err != nil {
		return nil, err
	}

	companyID := in.CompanyID
	if companyID == "" {
		companyID = product.CompanyID
	}
	stockItemID := in.StockItemID
	if stockItemID == "" && len(changes.Portions) == 1 {
		stockItemID = changes.Portions[0].StockItemID
	}
	mov := &entity.StockMovement{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		ProductID:      in.ProductID,
		WarehouseID:    in.WarehouseID,
		Type:           in.Type,
		QuantityChange: in.QuantityChange,
		Notes:          in.Notes,
		ReferenceType:  in.ReferenceType,
		ReferenceID:    in.ReferenceID,
		StockItemID:    stockItemID,
		IdempotencyKey: in.IdempotencyKey,
		CreatedAt:      now,
		CreatedBy:      in.UserID,
	}
	if err := s.Movements.Create(ctx, mov); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %v", domain.ErrConcurrencyConflict, err)
		}
		return nil, err
	}
	s.movements = append(s.movements, mov)
	return &appendResult{Movement: mov, Changes: changes}, nil
}

// planMovement traduce el asiento en cambios sobre las filas de stock.
func planMovement(items []*entity.StockItem, product *entity.Product, in MovementInput, now time.Time) (inventory.ItemChanges, error) {
	q := in.QuantityChange.Abs()
	switch in.Type {
	case entity.MovementReceiptIn, entity.MovementTransferIn, entity.MovementAdjustmentIncrease:
		units := in.Units
		if len(units) == 0 {
			if product.Tracked() {
				return inventory.ItemChanges{}, fmt.Errorf("%w: el producto %s requiere series o lote", domain.ErrInvalidMovement, product.SKU)
			}
			units = []inventory.Unit{{Quantity: q}}
		}
		total := decimal.Zero
		for _, u := range units {
			total = total.Add(u.Quantity)
		}
		if !total.Equal(q) {
			return inventory.ItemChanges{}, fmt.Errorf("%w: las unidades suman %s y el movimiento %s", domain.ErrInvalidMovement, total, q)
		}
		status := in.Status
		if status == "" {
			status = entity.StockAvailable
		}
		return inventory.PlanIncrease(items, product, in.WarehouseID, units, status, now)

	case entity.MovementTransferOut, entity.MovementAdjustmentDecrease, entity.MovementShipmentOut:
		order := in.ConsumeOrder
		if len(order) == 0 {
			order = []entity.StockStatus{entity.StockAvailable}
		}
		return inventory.PlanDecrease(items, in.ProductID, in.WarehouseID, q, in.StockItemID, order, now)

	case entity.MovementReservationHold:
		return inventory.PlanCommit(items, in.ProductID, in.WarehouseID, q, in.OrderLineID, now)

	case entity.MovementReservationRelease:
		changes, err := inventory.PlanRelease(items, in.ProductID, in.WarehouseID, in.OrderLineID, now)
		if err != nil {
			return inventory.ItemChanges{}, err
		}
		if !changes.Quantity().Equal(q) {
			return inventory.ItemChanges{}, fmt.Errorf("%w: se liberarían %s y el movimiento indica %s", domain.ErrInvalidMovement, changes.Quantity(), q)
		}
		return changes, nil
	}
	return inventory.ItemChanges{}, fmt.Errorf("%w: tipo %q desconocido", domain.ErrInvalidMovement, in.Type)
}

// applyChanges persiste los cambios planificados. Borra primero para que una serie
// retirada pueda volver a crearse en la misma transacción.
func applyChanges(ctx context.Context, items repository.StockItemRepository, c inventory.ItemChanges) error {
	for _, id := range c.Deleted {
		if err := items.Delete(ctx, id); err != nil {
			return err
		}
	}
	for _, it := range c.Updated {
		if err := items.Update(ctx, it); err != nil {
			return err
		}
	}
	for _, it := range c.Created {
		if err := items.Create(ctx, it); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return fmt.Errorf("%w: %v", domain.ErrInvalidMovement, err)
			}
			return err
		}
	}
	return nil
}
