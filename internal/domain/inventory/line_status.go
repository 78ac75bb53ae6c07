package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// LineStatusFor deriva el estado de una línea de pedido desde sus cantidades.
// committed es lo comprometido y aún no despachado.
func LineStatusFor(ordered, committed, shipped decimal.Decimal) entity.LineStatus {
	switch {
	case shipped.GreaterThanOrEqual(ordered) && ordered.IsPositive():
		return entity.LineShipped
	case shipped.IsPositive():
		return entity.LinePartiallyShipped
	case committed.IsPositive() && committed.Add(shipped).GreaterThanOrEqual(ordered):
		return entity.LineFullyCommitted
	case committed.IsPositive():
		return entity.LinePartiallyCommitted
	}
	return entity.LineUnallocated
}

// Outstanding cantidad aún comprometible: pedido - despachado - comprometido.
func Outstanding(ordered, committed, shipped decimal.Decimal) decimal.Decimal {
	out := ordered.Sub(shipped).Sub(committed)
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}
