package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// TransferUseCase traslados entre bodegas.
type TransferUseCase struct {
	ledger *Ledger
	read   Repos
	log    *logger.Logger
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(ledger *Ledger, read Repos, log *logger.Logger) *TransferUseCase {
	return &TransferUseCase{ledger: ledger, read: read, log: log}
}

// TransferDraft datos para crear un traslado.
type TransferDraft struct {
	CompanyID       string
	UserID          string
	Date            time.Time
	FromWarehouseID string
	ToWarehouseID   string
	Notes           string
	Lines           []entity.TransferLine
}

// CreateTransfer valida y guarda el traslado en DRAFT. La disponibilidad se valida contra el
// estado actual; al completar se vuelve a validar dentro de la transacción.
func (uc *TransferUseCase) CreateTransfer(ctx context.Context, d TransferDraft) (*entity.InventoryTransfer, error) {
	if d.FromWarehouseID == "" || d.ToWarehouseID == "" {
		return nil, fmt.Errorf("%w: bodegas de origen y destino son obligatorias", domain.ErrInvalidInput)
	}
	if d.FromWarehouseID == d.ToWarehouseID {
		return nil, fmt.Errorf("%w: origen y destino deben ser distintos", domain.ErrInvalidInput)
	}
	if len(d.Lines) == 0 {
		return nil, fmt.Errorf("%w: el traslado no tiene líneas", domain.ErrInvalidInput)
	}
	for _, whID := range []string{d.FromWarehouseID, d.ToWarehouseID} {
		wh, err := uc.read.Warehouses.GetByID(ctx, whID)
		if err != nil {
			return nil, err
		}
		if wh == nil || wh.CompanyID != d.CompanyID {
			return nil, fmt.Errorf("bodega %s: %w", whID, domain.ErrNotFound)
		}
	}

	totals := map[string]decimal.Decimal{}
	var order []string
	for _, l := range d.Lines {
		if !l.Quantity.IsPositive() || !inventory.IsWhole(l.Quantity) {
			return nil, fmt.Errorf("%w: cantidad %s inválida", domain.ErrInvalidInput, l.Quantity)
		}
		if _, ok := totals[l.ProductID]; !ok {
			order = append(order, l.ProductID)
			totals[l.ProductID] = decimal.Zero
		}
		totals[l.ProductID] = totals[l.ProductID].Add(l.Quantity)
	}
	for _, productID := range order {
		p, err := uc.read.Products.GetByID(ctx, productID)
		if err != nil {
			return nil, err
		}
		if p == nil || p.CompanyID != d.CompanyID {
			return nil, fmt.Errorf("producto %s: %w", productID, domain.ErrNotFound)
		}
		items, err := uc.read.Items.ListByProductWarehouse(ctx, productID, d.FromWarehouseID)
		if err != nil {
			return nil, err
		}
		available := inventory.ComputeStockInfo(items).Available
		if totals[productID].GreaterThan(available) {
			return nil, &domain.InsufficientStockError{ProductID: productID, WarehouseID: d.FromWarehouseID, Requested: totals[productID], Available: available}
		}
	}

	now := uc.ledger.now()
	date := d.Date
	if date.IsZero() {
		date = now
	}
	t := &entity.InventoryTransfer{
		ID:              uuid.New().String(),
		CompanyID:       d.CompanyID,
		Date:            date,
		FromWarehouseID: d.FromWarehouseID,
		ToWarehouseID:   d.ToWarehouseID,
		Lines:           append([]entity.TransferLine(nil), d.Lines...),
		Status:          entity.TransferDraft,
		Notes:           d.Notes,
		CreatedAt:       now,
		CreatedBy:       d.UserID,
	}
	if err := uc.ledger.run(ctx, func(s *txScope) error {
		return s.Transfers.Create(ctx, t)
	}); err != nil {
		return nil, err
	}
	return t, nil
}

// CompleteTransfer escribe TRANSFER_OUT y TRANSFER_IN por línea en una sola transacción. Si una
// línea no se puede cubrir no se escribe nada. Completar un traslado ya completado no hace nada.
func (uc *TransferUseCase) CompleteTransfer(ctx context.Context, companyID, userID, id string) (*entity.InventoryTransfer, error) {
	var result *entity.InventoryTransfer
	written := 0
	err := uc.ledger.run(ctx, func(s *txScope) error {
		t, err := s.Transfers.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if t == nil || t.CompanyID != companyID {
			return domain.ErrNotFound
		}
		result = t
		if t.Status == entity.TransferCompleted {
			return nil
		}

		keys := make([]repository.StockKey, 0, 2*len(t.Lines))
		for _, l := range t.Lines {
			keys = append(keys,
				repository.StockKey{ProductID: l.ProductID, WarehouseID: t.FromWarehouseID},
				repository.StockKey{ProductID: l.ProductID, WarehouseID: t.ToWarehouseID})
		}
		if err := lockKeys(ctx, s, keys); err != nil {
			return err
		}

		for idx, l := range t.Lines {
			out, err := uc.ledger.append(ctx, s, MovementInput{
				CompanyID:      companyID,
				UserID:         userID,
				ProductID:      l.ProductID,
				WarehouseID:    t.FromWarehouseID,
				Type:           entity.MovementTransferOut,
				QuantityChange: l.Quantity.Neg(),
				Notes:          "traslado a " + t.ToWarehouseID,
				ReferenceType:  entity.RefTransfer,
				ReferenceID:    t.ID,
				IdempotencyKey: fmt.Sprintf("transfer:%s:%d:out", t.ID, idx),
			})
			if err != nil {
				return err
			}
			units := make([]inventory.Unit, 0, len(out.Changes.Portions))
			for _, p := range out.Changes.Portions {
				units = append(units, p.Unit())
			}
			if _, err := uc.ledger.append(ctx, s, MovementInput{
				CompanyID:      companyID,
				UserID:         userID,
				ProductID:      l.ProductID,
				WarehouseID:    t.ToWarehouseID,
				Type:           entity.MovementTransferIn,
				QuantityChange: l.Quantity,
				Notes:          "traslado desde " + t.FromWarehouseID,
				ReferenceType:  entity.RefTransfer,
				ReferenceID:    t.ID,
				IdempotencyKey: fmt.Sprintf("transfer:%s:%d:in", t.ID, idx),
				Units:          units,
			}); err != nil {
				return err
			}
		}

		now := uc.ledger.now()
		t.Status = entity.TransferCompleted
		t.CompletedAt = &now
		written = len(s.movements)
		return s.Transfers.Update(ctx, t)
	})
	if err != nil {
		return nil, err
	}
	if written > 0 {
		uc.log.Info().Str("transfer_id", id).Int("movements", written).Msg("traslado completado")
	}
	return result, nil
}

// GetTransfer obtiene un traslado.
func (uc *TransferUseCase) GetTransfer(ctx context.Context, companyID, id string) (*entity.InventoryTransfer, error) {
	t, err := uc.read.Transfers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil || t.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return t, nil
}
