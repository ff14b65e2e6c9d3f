// Package notify carries storefront events out of the request path and keeps the transient
// toast shown to each profile.
package notify

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"storefront/models"
)

// Publisher delivers storefront events to whoever listens (the message broker in production).
type Publisher interface {
	Publish(ctx context.Context, ev models.StorefrontEvent) error
}

// Fanout publishes to every publisher and joins their errors.
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, ev models.StorefrontEvent) error {
	var errs []error
	for _, p := range f {
		if err := p.Publish(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Log writes events to a zap logger. It stands in for the broker when none is configured.
type Log struct {
	Logger *zap.Logger
}

func (l Log) Publish(_ context.Context, ev models.StorefrontEvent) error {
	l.Logger.Info("storefront event",
		zap.String("type", ev.Type),
		zap.String("profile_id", ev.ProfileID),
		zap.Int64("order_id", ev.OrderID),
		zap.Int64("product_id", ev.ProductID),
	)
	return nil
}

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []models.StorefrontEvent
}

func (r *Recorder) Publish(_ context.Context, ev models.StorefrontEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func (r *Recorder) Events() []models.StorefrontEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.StorefrontEvent, len(r.events))
	copy(out, r.events)
	return out
}

// Types lists the recorded event types in publish order.
func (r *Recorder) Types() []string {
	events := r.Events()
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.Type
	}
	return out
}
