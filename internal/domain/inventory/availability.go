package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// StockInfo cantidades derivadas de un (producto, bodega).
// Physical = AVAILABLE + COMMITTED + IN_TRANSIT; Available = Physical - Committed.
// LedgerBalance incluye además lo averiado: es la cantidad esperada que exige un ajuste.
type StockInfo struct {
	Physical      decimal.Decimal
	Committed     decimal.Decimal
	Available     decimal.Decimal
	Damaged       decimal.Decimal
	LedgerBalance decimal.Decimal
}

// ComputeStockInfo calcula las cantidades desde las filas vivas de stock.
func ComputeStockInfo(items []*entity.StockItem) StockInfo {
	info := StockInfo{Physical: decimal.Zero, Committed: decimal.Zero, Damaged: decimal.Zero}
	for _, it := range items {
		if it.Status.CountsAsPhysical() {
			info.Physical = info.Physical.Add(it.Quantity)
		}
		switch it.Status {
		case entity.StockCommitted:
			info.Committed = info.Committed.Add(it.Quantity)
		case entity.StockDamaged:
			info.Damaged = info.Damaged.Add(it.Quantity)
		}
	}
	info.Available = info.Physical.Sub(info.Committed)
	info.LedgerBalance = LedgerBalance(items)
	return info
}

// Check verifica 0 <= comprometido <= físico. Cualquier otro resultado indica corrupción del libro.
func (s StockInfo) Check(productID, warehouseID string) error {
	switch {
	case s.Physical.IsNegative():
		return &domain.InvariantViolationError{ProductID: productID, WarehouseID: warehouseID, Detail: "stock físico negativo: " + s.Physical.String()}
	case s.Committed.IsNegative():
		return &domain.InvariantViolationError{ProductID: productID, WarehouseID: warehouseID, Detail: "stock comprometido negativo: " + s.Committed.String()}
	case s.Committed.GreaterThan(s.Physical):
		return &domain.InvariantViolationError{ProductID: productID, WarehouseID: warehouseID,
			Detail: "comprometido " + s.Committed.String() + " supera físico " + s.Physical.String()}
	case s.Damaged.IsNegative():
		return &domain.InvariantViolationError{ProductID: productID, WarehouseID: warehouseID, Detail: "stock averiado negativo: " + s.Damaged.String()}
	}
	return nil
}

// LedgerBalance suma de todas las filas vivas sin importar el estado. Es lo que debe igualar la
// suma de movimientos no reservatorios del libro.
func LedgerBalance(items []*entity.StockItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Quantity)
	}
	return total
}

// CommittedTo cantidad e IDs de filas comprometidas a una línea de pedido.
func CommittedTo(items []*entity.StockItem, orderLineID string) (decimal.Decimal, []string) {
	total := decimal.Zero
	var ids []string
	for _, it := range items {
		if it.Status == entity.StockCommitted && it.OrderLineID == orderLineID {
			total = total.Add(it.Quantity)
			ids = append(ids, it.ID)
		}
	}
	return total, ids
}
