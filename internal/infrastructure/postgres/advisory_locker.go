package postgres

import (
	"context"

	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

var _ repository.StockLocker = (*AdvisoryLocker)(nil)

// AdvisoryLocker bloquea llaves (producto, bodega) con pg_advisory_xact_lock; el bloqueo se
// libera solo al terminar la transacción. Fuera de una transacción no tiene efecto útil.
type AdvisoryLocker struct {
	q Querier
}

// NewAdvisoryLocker construye el bloqueador sobre q.
func NewAdvisoryLocker(q Querier) *AdvisoryLocker {
	return &AdvisoryLocker{q: q}
}

// Lock toma los bloqueos en el orden recibido; el llamador los pasa ordenados.
func (l *AdvisoryLocker) Lock(ctx context.Context, keys ...repository.StockKey) error {
	for _, k := range keys {
		if _, err := l.q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, "stock:"+k.String()); err != nil {
			return wrap("advisory lock "+k.String(), err)
		}
	}
	return nil
}
