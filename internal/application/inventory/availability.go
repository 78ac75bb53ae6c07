package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// AvailabilityUseCase consulta cantidades físicas, comprometidas y disponibles.
type AvailabilityUseCase struct {
	ledger *Ledger
	read   Repos
	log    *logger.Logger
}

// NewAvailabilityUseCase construye el caso de uso.
func NewAvailabilityUseCase(ledger *Ledger, read Repos, log *logger.Logger) *AvailabilityUseCase {
	return &AvailabilityUseCase{ledger: ledger, read: read, log: log}
}

// GetStockInfo devuelve las cantidades de un producto en una bodega o, con warehouseID vacío,
// en todas. Lectura sin bloqueos del último estado confirmado.
func (uc *AvailabilityUseCase) GetStockInfo(ctx context.Context, companyID, productID, warehouseID string) (inventory.StockInfo, error) {
	product, err := uc.read.Products.GetByID(ctx, productID)
	if err != nil {
		return inventory.StockInfo{}, err
	}
	if product == nil || (companyID != "" && product.CompanyID != companyID) {
		return inventory.StockInfo{}, domain.ErrNotFound
	}

	var items []*entity.StockItem
	if warehouseID == "" {
		items, err = uc.read.Items.ListByProduct(ctx, productID)
	} else {
		wh, werr := uc.read.Warehouses.GetByID(ctx, warehouseID)
		if werr != nil {
			return inventory.StockInfo{}, werr
		}
		if wh == nil || wh.CompanyID != product.CompanyID {
			return inventory.StockInfo{}, domain.ErrNotFound
		}
		items, err = uc.read.Items.ListByProductWarehouse(ctx, productID, warehouseID)
	}
	if err != nil {
		return inventory.StockInfo{}, err
	}

	info := inventory.ComputeStockInfo(items)
	if err := info.Check(productID, warehouseID); err != nil {
		uc.log.Error().Err(err).Str("product_id", productID).Str("warehouse_id", warehouseID).
			Str("physical", info.Physical.String()).Str("committed", info.Committed.String()).
			Msg("invariante de stock violada")
		return info, err
	}
	return info, nil
}

// LedgerCheck resultado de comparar el libro contra las filas vivas.
type LedgerCheck struct {
	ProductID     string
	WarehouseID   string
	LedgerBalance decimal.Decimal
	ItemsBalance  decimal.Decimal
	Info          inventory.StockInfo
}

// VerifyLedger recalcula el saldo del (producto, bodega) desde los movimientos y lo compara con
// la suma de las filas vivas. Una diferencia es una violación de invariante.
func (uc *AvailabilityUseCase) VerifyLedger(ctx context.Context, companyID, productID, warehouseID string) (*LedgerCheck, error) {
	if productID == "" || warehouseID == "" {
		return nil, fmt.Errorf("%w: producto y bodega son obligatorios", domain.ErrInvalidInput)
	}
	var check *LedgerCheck
	err := uc.ledger.run(ctx, func(s *txScope) error {
		product, err := s.Products.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil || (companyID != "" && product.CompanyID != companyID) {
			return domain.ErrNotFound
		}
		if err := s.Locks.Lock(ctx, repository.StockKey{ProductID: productID, WarehouseID: warehouseID}); err != nil {
			return err
		}
		sum, err := s.Movements.SumByProductWarehouse(ctx, productID, warehouseID)
		if err != nil {
			return err
		}
		items, err := s.Items.ListByProductWarehouse(ctx, productID, warehouseID)
		if err != nil {
			return err
		}
		check = &LedgerCheck{
			ProductID:     productID,
			WarehouseID:   warehouseID,
			LedgerBalance: sum,
			ItemsBalance:  inventory.LedgerBalance(items),
			Info:          inventory.ComputeStockInfo(items),
		}
		if !check.LedgerBalance.Equal(check.ItemsBalance) {
			return &domain.InvariantViolationError{
				ProductID:   productID,
				WarehouseID: warehouseID,
				Detail:      fmt.Sprintf("saldo del libro %s distinto a filas de stock %s", check.LedgerBalance, check.ItemsBalance),
			}
		}
		return check.Info.Check(productID, warehouseID)
	})
	var inv *domain.InvariantViolationError
	if errors.As(err, &inv) {
		return check, err
	}
	if err != nil {
		return nil, err
	}
	return check, nil
}
