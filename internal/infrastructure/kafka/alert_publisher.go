// Package kafka publica alertas de stock bajo en un tópico Kafka (segmentio/kafka-go).
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/jhoicas/carneiro-api/internal/application/inventory"
	"github.com/jhoicas/carneiro-api/pkg/config"
)

var _ inventory.AlertPublisher = (*AlertPublisher)(nil)

// MessageWriter subconjunto de *kafka.Writer que usa el publicador.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// AlertPublisher serializa cada LowStockAlert en JSON con el ID de producto como key,
// de modo que las alertas de un mismo producto caen en la misma partición.
type AlertPublisher struct {
	writer MessageWriter
	source string
}

// NewWriter construye el writer para el tópico de alertas.
func NewWriter(cfg config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.AlertTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
}

// NewAlertPublisher construye el publicador; source identifica a la instancia emisora.
func NewAlertPublisher(w MessageWriter, source string) *AlertPublisher {
	return &AlertPublisher{writer: w, source: source}
}

type alertEvent struct {
	Type   string                  `json:"type"`
	Source string                  `json:"source"`
	Alert  inventory.LowStockAlert `json:"alert"`
}

// PublishLowStock implementa inventory.AlertPublisher.
func (p *AlertPublisher) PublishLowStock(ctx context.Context, alert inventory.LowStockAlert) error {
	payload, err := json.Marshal(alertEvent{Type: "inventory.low_stock", Source: p.source, Alert: alert})
	if err != nil {
		return fmt.Errorf("serializar alerta: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(alert.ProductID),
		Value: payload,
		Time:  alert.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte("inventory.low_stock")},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publicar alerta de stock bajo: %w", err)
	}
	return nil
}

// Close libera el writer.
func (p *AlertPublisher) Close() error {
	return p.writer.Close()
}
