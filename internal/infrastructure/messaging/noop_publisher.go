package messaging

import (
	"context"

	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// LogPublisher reemplaza a Kafka cuando no hay brokers: deja constancia en el log en nivel debug.
type LogPublisher struct {
	log *logger.Logger
}

// NewLogPublisher crea el publicador de respaldo.
func NewLogPublisher(log *logger.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) PublishMovements(_ context.Context, movements []*entity.StockMovement) error {
	for _, m := range movements {
		p.log.Debug().Str("movement_id", m.ID).Str("type", string(m.Type)).
			Str("product_id", m.ProductID).Str("warehouse_id", m.WarehouseID).
			Str("quantity", m.QuantityChange.String()).Msg("movimiento confirmado")
	}
	return nil
}
