package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// AdjustmentUseCase conciliación de conteos físicos contra el libro.
type AdjustmentUseCase struct {
	ledger *Ledger
	read   Repos
	log    *logger.Logger
}

// NewAdjustmentUseCase construye el caso de uso.
func NewAdjustmentUseCase(ledger *Ledger, read Repos, log *logger.Logger) *AdjustmentUseCase {
	return &AdjustmentUseCase{ledger: ledger, read: read, log: log}
}

// AdjustmentDraft datos para crear un ajuste.
type AdjustmentDraft struct {
	CompanyID   string
	UserID      string
	Date        time.Time
	WarehouseID string
	Reason      entity.AdjustmentReason
	Lines       []entity.AdjustmentLine
}

// CreateAdjustment valida y guarda el ajuste en DRAFT.
func (uc *AdjustmentUseCase) CreateAdjustment(ctx context.Context, d AdjustmentDraft) (*entity.InventoryAdjustment, error) {
	if !d.Reason.Valid() {
		return nil, fmt.Errorf("%w: motivo %q desconocido", domain.ErrInvalidInput, d.Reason)
	}
	if len(d.Lines) == 0 {
		return nil, fmt.Errorf("%w: el ajuste no tiene líneas", domain.ErrInvalidInput)
	}
	wh, err := uc.read.Warehouses.GetByID(ctx, d.WarehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil || wh.CompanyID != d.CompanyID {
		return nil, fmt.Errorf("bodega %s: %w", d.WarehouseID, domain.ErrNotFound)
	}

	seen := map[string]bool{}
	for _, l := range d.Lines {
		if seen[l.ProductID] {
			return nil, fmt.Errorf("%w: producto %s repetido en el ajuste", domain.ErrInvalidInput, l.ProductID)
		}
		seen[l.ProductID] = true
		if l.ExpectedQuantity.IsNegative() || l.CountedQuantity.IsNegative() ||
			!inventory.IsWhole(l.ExpectedQuantity) || !inventory.IsWhole(l.CountedQuantity) {
			return nil, fmt.Errorf("%w: cantidades del producto %s inválidas", domain.ErrInvalidInput, l.ProductID)
		}
		p, err := uc.read.Products.GetByID(ctx, l.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil || p.CompanyID != d.CompanyID {
			return nil, fmt.Errorf("producto %s: %w", l.ProductID, domain.ErrNotFound)
		}
		if l.Delta().IsPositive() {
			if err := validateTrackedSurplus(p, l); err != nil {
				return nil, err
			}
		}
	}

	now := uc.ledger.now()
	date := d.Date
	if date.IsZero() {
		date = now
	}
	a := &entity.InventoryAdjustment{
		ID:          uuid.New().String(),
		CompanyID:   d.CompanyID,
		Date:        date,
		WarehouseID: d.WarehouseID,
		Reason:      d.Reason,
		Lines:       append([]entity.AdjustmentLine(nil), d.Lines...),
		Status:      entity.AdjustmentDraft,
		CreatedAt:   now,
		CreatedBy:   d.UserID,
	}
	if err := uc.ledger.run(ctx, func(s *txScope) error {
		return s.Adjustments.Create(ctx, a)
	}); err != nil {
		return nil, err
	}
	return a, nil
}

func validateTrackedSurplus(p *entity.Product, l entity.AdjustmentLine) error {
	switch p.TrackingMode {
	case entity.TrackingSerial:
		if int64(len(l.SerialNumbers)) != l.Delta().IntPart() {
			return fmt.Errorf("%w: el sobrante de %s requiere %s series", domain.ErrInvalidInput, p.SKU, l.Delta())
		}
	case entity.TrackingBatch:
		if l.BatchNumber == "" {
			return fmt.Errorf("%w: el sobrante de %s requiere número de lote", domain.ErrInvalidInput, p.SKU)
		}
	}
	return nil
}

func surplusUnits(p *entity.Product, l entity.AdjustmentLine) []inventory.Unit {
	switch p.TrackingMode {
	case entity.TrackingSerial:
		return inventory.SerialUnits(l.SerialNumbers)
	case entity.TrackingBatch:
		return []inventory.Unit{{Quantity: l.Delta(), BatchNumber: l.BatchNumber, ExpiryDate: l.ExpiryDate}}
	}
	return nil
}

// consumeOrder estados que consume un faltante. Lo comprometido y en tránsito nunca se ajusta.
func consumeOrder(reason entity.AdjustmentReason) []entity.StockStatus {
	if reason == entity.ReasonDamage {
		return []entity.StockStatus{entity.StockDamaged, entity.StockAvailable}
	}
	return []entity.StockStatus{entity.StockAvailable, entity.StockDamaged}
}

// ApplyAdjustment escribe un movimiento por cada línea con diferencia. La cantidad esperada de
// cada línea debe coincidir con el saldo vivo; si no, StaleCountError y no se escribe nada.
func (uc *AdjustmentUseCase) ApplyAdjustment(ctx context.Context, companyID, userID, id string) (*entity.InventoryAdjustment, error) {
	var result *entity.InventoryAdjustment
	written := 0
	err := uc.ledger.run(ctx, func(s *txScope) error {
		a, err := s.Adjustments.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if a == nil || a.CompanyID != companyID {
			return domain.ErrNotFound
		}
		result = a
		if a.Status == entity.AdjustmentApplied {
			return nil
		}

		keys := make([]repository.StockKey, 0, len(a.Lines))
		for _, l := range a.Lines {
			keys = append(keys, repository.StockKey{ProductID: l.ProductID, WarehouseID: a.WarehouseID})
		}
		if err := lockKeys(ctx, s, keys); err != nil {
			return err
		}

		for idx, l := range a.Lines {
			items, err := s.Items.ListByProductWarehouse(ctx, l.ProductID, a.WarehouseID)
			if err != nil {
				return err
			}
			balance := inventory.ComputeStockInfo(items).LedgerBalance
			if !balance.Equal(l.ExpectedQuantity) {
				return &domain.StaleCountError{ProductID: l.ProductID, WarehouseID: a.WarehouseID, Expected: l.ExpectedQuantity, Actual: balance}
			}
			delta := l.Delta()
			if delta.IsZero() {
				continue
			}
			in := MovementInput{
				CompanyID:      companyID,
				UserID:         userID,
				ProductID:      l.ProductID,
				WarehouseID:    a.WarehouseID,
				QuantityChange: delta,
				Notes: fmt.Sprintf("reason=%s; esperado=%s contado=%s delta=%s",
					a.Reason, l.ExpectedQuantity, l.CountedQuantity, delta),
				ReferenceType:  entity.RefAdjustment,
				ReferenceID:    a.ID,
				IdempotencyKey: fmt.Sprintf("adjustment:%s:%d", a.ID, idx),
			}
			if delta.IsPositive() {
				p, err := s.Products.GetByID(ctx, l.ProductID)
				if err != nil {
					return err
				}
				if p == nil {
					return fmt.Errorf("producto %s: %w", l.ProductID, domain.ErrNotFound)
				}
				in.Type = entity.MovementAdjustmentIncrease
				in.Units = surplusUnits(p, l)
			} else {
				in.Type = entity.MovementAdjustmentDecrease
				in.ConsumeOrder = consumeOrder(a.Reason)
			}
			if _, err := uc.ledger.append(ctx, s, in); err != nil {
				return err
			}
		}

		now := uc.ledger.now()
		a.Status = entity.AdjustmentApplied
		a.AppliedAt = &now
		written = len(s.movements)
		return s.Adjustments.Update(ctx, a)
	})
	if err != nil {
		return nil, err
	}
	if written > 0 {
		uc.log.Info().Str("adjustment_id", id).Str("reason", string(result.Reason)).Int("movements", written).Msg("ajuste aplicado")
	}
	return result, nil
}

// GetAdjustment obtiene un ajuste.
func (uc *AdjustmentUseCase) GetAdjustment(ctx context.Context, companyID, id string) (*entity.InventoryAdjustment, error) {
	a, err := uc.read.Adjustments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil || a.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return a, nil
}
