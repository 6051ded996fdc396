package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carneiro-api/internal/application/inventory"
	alerts "github.com/jhoicas/carneiro-api/internal/infrastructure/kafka"
	"github.com/jhoicas/carneiro-api/pkg/config"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestAlertPublisher_PublishLowStock(t *testing.T) {
	w := &fakeWriter{}
	pub := alerts.NewAlertPublisher(w, "carneiro-api")
	at := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)

	err := pub.PublishLowStock(context.Background(), inventory.LowStockAlert{
		ProductID: "p-005", SKU: "DEST-002", Name: "Vodka Premium",
		Stock: decimal.NewFromInt(1), MinStock: decimal.NewFromInt(4), OccurredAt: at,
	})
	require.NoError(t, err)

	require.Len(t, w.msgs, 1)
	msg := w.msgs[0]
	assert.Equal(t, "p-005", string(msg.Key))
	assert.Equal(t, at, msg.Time)

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	assert.Equal(t, "inventory.low_stock", body["type"])
	assert.Equal(t, "carneiro-api", body["source"])
	alert := body["alert"].(map[string]any)
	assert.Equal(t, "DEST-002", alert["sku"])
	assert.Equal(t, "1", alert["stock"])
}

func TestAlertPublisher_WrapsWriterError(t *testing.T) {
	pub := alerts.NewAlertPublisher(&fakeWriter{err: errors.New("broker caído")}, "x")
	err := pub.PublishLowStock(context.Background(), inventory.LowStockAlert{ProductID: "p-1"})
	assert.ErrorContains(t, err, "broker caído")
}

func TestNewWriter_UsesConfiguredTopic(t *testing.T) {
	w := alerts.NewWriter(config.KafkaConfig{Brokers: []string{"kafka:9092"}, AlertTopic: "inventory.low-stock"})
	defer w.Close()
	assert.Equal(t, "inventory.low-stock", w.Topic)
	assert.Equal(t, "kafka:9092", w.Addr.String())
}
