package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/inventory"
)

// LowStockUseCase genera la lista de productos por debajo de su umbral de stock bajo.
type LowStockUseCase struct {
	read Repos
}

// NewLowStockUseCase construye el caso de uso.
func NewLowStockUseCase(read Repos) *LowStockUseCase {
	return &LowStockUseCase{read: read}
}

// ListLowStock devuelve los productos cuyo disponible está por debajo del umbral, con la
// cantidad sugerida de pedido (umbral * 1.5 - disponible). warehouseID vacío considera todas
// las bodegas de la empresa.
func (uc *LowStockUseCase) ListLowStock(ctx context.Context, companyID, warehouseID string) ([]dto.LowStockItemDTO, error) {
	if warehouseID != "" {
		wh, err := uc.read.Warehouses.GetByID(ctx, warehouseID)
		if err != nil {
			return nil, err
		}
		if wh == nil || wh.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
	}
	products, err := uc.read.Products.ListByCompany(ctx, companyID, 10000, 0)
	if err != nil {
		return nil, err
	}

	factor := decimal.NewFromFloat(1.5)
	out := make([]dto.LowStockItemDTO, 0)
	for _, p := range products {
		if !p.LowStockThreshold.IsPositive() {
			continue
		}
		var items []*entity.StockItem
		if warehouseID == "" {
			items, err = uc.read.Items.ListByProduct(ctx, p.ID)
		} else {
			items, err = uc.read.Items.ListByProductWarehouse(ctx, p.ID, warehouseID)
		}
		if err != nil {
			return nil, err
		}
		info := inventory.ComputeStockInfo(items)
		if !info.Available.LessThan(p.LowStockThreshold) {
			continue
		}
		ideal := p.LowStockThreshold.Mul(factor).Ceil()
		suggested := ideal.Sub(info.Available)
		if suggested.IsNegative() {
			suggested = decimal.Zero
		}
		out = append(out, dto.LowStockItemDTO{
			ProductID:          p.ID,
			SKU:                p.SKU,
			ProductName:        p.Name,
			WarehouseID:        warehouseID,
			Physical:           info.Physical,
			Committed:          info.Committed,
			Available:          info.Available,
			Threshold:          p.LowStockThreshold,
			Deficit:            p.LowStockThreshold.Sub(info.Available),
			SuggestedOrderQty:  suggested,
			UnitCost:           p.Cost,
			EstimatedOrderCost: suggested.Mul(p.Cost),
		})
	}

	// Mayor déficit primero; empate por SKU.
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Deficit.Equal(out[j].Deficit) {
			return out[i].Deficit.GreaterThan(out[j].Deficit)
		}
		return out[i].SKU < out[j].SKU
	})
	for i := range out {
		out[i].Priority = i + 1
	}
	return out, nil
}
