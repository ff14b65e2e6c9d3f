package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"storefront/models"
)

type failing struct{ err error }

func (f failing) Publish(context.Context, models.StorefrontEvent) error { return f.err }

func TestFanout(t *testing.T) {
	var a, b Recorder
	boom := errors.New("broker down")
	f := Fanout{&a, failing{boom}, &b}

	err := f.Publish(context.Background(), models.StorefrontEvent{Type: models.EventOrderCreated})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{models.EventOrderCreated}, a.Types())
	assert.Equal(t, []string{models.EventOrderCreated}, b.Types(), "a failing publisher does not stop the rest")
}

func TestLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := Log{Logger: zap.New(core)}

	require.NoError(t, l.Publish(context.Background(), models.StorefrontEvent{Type: models.EventCartItemAdded, ProductID: 3}))
	entries := logs.FilterMessage("storefront event").All()
	require.Len(t, entries, 1)
	assert.Equal(t, models.EventCartItemAdded, entries[0].ContextMap()["type"])
}

func TestToasts_ExpireAndReplace(t *testing.T) {
	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	toasts := NewToasts(3 * time.Second)
	toasts.now = func() time.Time { return clock }

	toasts.Show("p1", KindSuccess, "iPhone 15 добавлен в корзину")
	got, ok := toasts.Current("p1")
	require.True(t, ok)
	assert.Equal(t, "iPhone 15 добавлен в корзину", got.Message)

	_, ok = toasts.Current("p2")
	assert.False(t, ok)

	clock = clock.Add(2 * time.Second)
	toasts.Show("p1", KindWarning, "Требуется вход")

	clock = clock.Add(2 * time.Second)
	got, ok = toasts.Current("p1")
	require.True(t, ok, "a new toast restarts the lifetime")
	assert.Equal(t, KindWarning, got.Kind)

	clock = clock.Add(time.Second)
	_, ok = toasts.Current("p1")
	assert.False(t, ok)
}
