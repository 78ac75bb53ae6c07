package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

var _ inventory.MovementPublisher = (*KafkaPublisher)(nil)

// MovementEvent mensaje publicado por cada asiento confirmado del libro.
type MovementEvent struct {
	MovementID     string    `json:"movement_id"`
	CompanyID      string    `json:"company_id"`
	ProductID      string    `json:"product_id"`
	WarehouseID    string    `json:"warehouse_id"`
	Type           string    `json:"type"`
	QuantityChange string    `json:"quantity_change"`
	ReferenceType  string    `json:"reference_type,omitempty"`
	ReferenceID    string    `json:"reference_id,omitempty"`
	StockItemID    string    `json:"stock_item_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	CreatedBy      string    `json:"created_by,omitempty"`
}

// NewMovementEvent construye el evento de un movimiento.
func NewMovementEvent(m *entity.StockMovement) MovementEvent {
	return MovementEvent{
		MovementID:     m.ID,
		CompanyID:      m.CompanyID,
		ProductID:      m.ProductID,
		WarehouseID:    m.WarehouseID,
		Type:           string(m.Type),
		QuantityChange: m.QuantityChange.String(),
		ReferenceType:  m.ReferenceType,
		ReferenceID:    m.ReferenceID,
		StockItemID:    m.StockItemID,
		CreatedAt:      m.CreatedAt,
		CreatedBy:      m.CreatedBy,
	}
}

// MessageWriter lo que el publicador usa de *kafka.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher publica los movimientos confirmados en un tópico. La llave del mensaje es
// producto:bodega para que los eventos de un mismo saldo conserven el orden en la partición.
type KafkaPublisher struct {
	writer  MessageWriter
	timeout time.Duration
}

// NewKafkaPublisher crea el writer hacia los brokers dados.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchSize:    100,
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Compression:  kafka.Snappy,
	}
	return NewKafkaPublisherWithWriter(writer)
}

// NewKafkaPublisherWithWriter permite inyectar el writer (pruebas).
func NewKafkaPublisherWithWriter(w MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: w, timeout: 5 * time.Second}
}

func (p *KafkaPublisher) PublishMovements(ctx context.Context, movements []*entity.StockMovement) error {
	if len(movements) == 0 {
		return nil
	}
	msgs := make([]kafka.Message, 0, len(movements))
	for _, m := range movements {
		value, err := json.Marshal(NewMovementEvent(m))
		if err != nil {
			return fmt.Errorf("marshal movement event: %w", err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(m.ProductID + ":" + m.WarehouseID),
			Value: value,
			Time:  m.CreatedAt,
			Headers: []kafka.Header{
				{Key: "event-type", Value: []byte(m.Type)},
				{Key: "company-id", Value: []byte(m.CompanyID)},
			},
		})
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write movement events to kafka: %w", err)
	}
	return nil
}

// Close libera el writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
