package consumers

import (
	"encoding/json"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"storefront/models"
)

type ackRecorder struct {
	acked   int
	nacked  int
	requeue bool
}

func (a *ackRecorder) Ack(uint64, bool) error { a.acked++; return nil }

func (a *ackRecorder) Nack(_ uint64, _ bool, requeue bool) error {
	a.nacked++
	a.requeue = requeue
	return nil
}

func (a *ackRecorder) Reject(uint64, bool) error { return nil }

func delivery(t *testing.T, ack *ackRecorder, body any) amqp.Delivery {
	t.Helper()
	raw, ok := body.([]byte)
	if !ok {
		var err error
		raw, err = json.Marshal(body)
		require.NoError(t, err)
	}
	return amqp.Delivery{Acknowledger: ack, Body: raw}
}

func TestHandleEvent_AcksKnownEvents(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ec := NewEventConsumer(zap.New(core))
	ack := &ackRecorder{}

	ec.HandleEvent(delivery(t, ack, models.StorefrontEvent{
		Type:      models.EventOrderStatusChanged,
		ProfileID: "p1",
		OrderID:   42,
		Status:    models.StatusInTransit,
	}))

	assert.Equal(t, 1, ack.acked)
	assert.Zero(t, ack.nacked)
	entries := logs.FilterMessage("storefront event consumed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "В пути", entries[0].ContextMap()["status"])
}

func TestHandleEvent_DeadLettersBadMessages(t *testing.T) {
	tests := map[string]any{
		"not json":     []byte("42|created"),
		"unknown type": models.StorefrontEvent{Type: "order.refunded"},
		"no type":      map[string]any{"profile_id": "p1"},
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			ec := NewEventConsumer(zap.NewNop())
			ack := &ackRecorder{}
			ec.HandleEvent(delivery(t, ack, body))

			assert.Zero(t, ack.acked)
			assert.Equal(t, 1, ack.nacked)
			assert.False(t, ack.requeue)
		})
	}
}

func TestHandleDeadLetter(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	ec := NewEventConsumer(zap.New(core))
	ack := &ackRecorder{}

	msg := delivery(t, ack, []byte("garbage"))
	msg.Headers = amqp.Table{"x-death": []interface{}{amqp.Table{"reason": "rejected"}}}
	ec.HandleDeadLetter(msg)

	assert.Equal(t, 1, ack.acked)
	entries := logs.FilterMessage("received dead letter").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "rejected", entries[0].ContextMap()["reason"])
}
