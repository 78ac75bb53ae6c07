package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/internal/domain/inventory"
)

func TestComputeStockInfo_AveriadoNoEsFisico(t *testing.T) {
	items := []*entity.StockItem{
		row("a", entity.StockAvailable, 6),
		row("c", entity.StockCommitted, 3),
		row("d", entity.StockDamaged, 2),
		row("t", entity.StockInTransit, 1),
	}
	info := inventory.ComputeStockInfo(items)

	assert.True(t, info.Physical.Equal(qty(10)))
	assert.True(t, info.Committed.Equal(qty(3)))
	assert.True(t, info.Available.Equal(qty(7)))
	assert.True(t, info.Damaged.Equal(qty(2)))
	assert.NoError(t, info.Check(testProductID, testWarehouseID))
	assert.True(t, inventory.LedgerBalance(items).Equal(qty(12)), "el saldo del libro incluye lo averiado")
	assert.True(t, info.LedgerBalance.Equal(qty(12)))
}

func TestStockInfoCheck_ComprometidoMayorQueFisico(t *testing.T) {
	info := inventory.StockInfo{Physical: qty(2), Committed: qty(3), Available: qty(-1), Damaged: qty(0)}
	err := info.Check(testProductID, testWarehouseID)
	assert.ErrorIs(t, err, domain.ErrInvariantViolation)
}

func TestLineStatusFor(t *testing.T) {
	assert.Equal(t, entity.LineUnallocated, inventory.LineStatusFor(qty(5), qty(0), qty(0)))
	assert.Equal(t, entity.LinePartiallyCommitted, inventory.LineStatusFor(qty(5), qty(2), qty(0)))
	assert.Equal(t, entity.LineFullyCommitted, inventory.LineStatusFor(qty(5), qty(5), qty(0)))
	assert.Equal(t, entity.LinePartiallyShipped, inventory.LineStatusFor(qty(5), qty(3), qty(2)))
	assert.Equal(t, entity.LineShipped, inventory.LineStatusFor(qty(5), qty(0), qty(5)))
	assert.True(t, inventory.Outstanding(qty(5), qty(3), qty(1)).Equal(qty(1)))
}

func TestWeightedAverageCost(t *testing.T) {
	got := inventory.WeightedAverageCost(qty(10), qty(100), qty(10), qty(200))
	assert.True(t, got.Equal(qty(150)), "got %s", got)

	got = inventory.WeightedAverageCost(qty(0), qty(100), qty(4), qty(80))
	assert.True(t, got.Equal(qty(80)), "sin existencias manda el costo recibido")
}
