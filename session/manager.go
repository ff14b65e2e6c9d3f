// Package session loads and saves the per-profile application state around each intent.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"storefront/cart"
	"storefront/config"
	"storefront/models"
	"storefront/orders"
	"storefront/store"
)

// Manager runs intents against profile state. Calls for the same profile are serialised within
// the process; separate processes sharing a store still race, last write wins.
type Manager struct {
	store store.Store
	log   *zap.Logger
	keys  config.StorageKeys

	mu    sync.Mutex
	locks map[string]*profileLock
}

type profileLock struct {
	mu   sync.Mutex
	refs int
}

func NewManager(s store.Store, log *zap.Logger, keys config.StorageKeys) *Manager {
	return &Manager{store: s, log: log, keys: keys, locks: make(map[string]*profileLock)}
}

func (m *Manager) lock(profileID string) func() {
	m.mu.Lock()
	l, ok := m.locks[profileID]
	if !ok {
		l = &profileLock{}
		m.locks[profileID] = l
	}
	l.refs++
	m.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		m.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(m.locks, profileID)
		}
		m.mu.Unlock()
	}
}

// Do loads the profile state, runs fn and writes back every value fn changed.
// Nothing is written when fn returns an error.
func (m *Manager) Do(ctx context.Context, profileID string, fn func(*State) error) error {
	unlock := m.lock(profileID)
	defer unlock()

	s := m.load(ctx, profileID)
	before := m.snapshot(s)
	if err := fn(s); err != nil {
		return err
	}
	m.save(ctx, s, before)
	return nil
}

func (m *Manager) load(ctx context.Context, profileID string) *State {
	s := &State{ProfileID: profileID}
	s.Cart = cart.New(store.ReadJSON[[]models.CartLine](ctx, m.store, m.log, profileID, m.keys.Cart, nil))
	s.Wishlist = store.ReadJSON[[]int64](ctx, m.store, m.log, profileID, m.keys.Wishlist, nil)
	s.Theme = store.ReadJSON(ctx, m.store, m.log, profileID, m.keys.Theme, ThemeLight)
	s.User = store.ReadJSON[*models.User](ctx, m.store, m.log, profileID, m.keys.User, nil)
	s.Orders = orders.NewHistory(store.ReadJSON[[]models.Order](ctx, m.store, m.log, profileID, m.keys.Orders, nil))
	s.Products = store.ReadJSON[[]models.Product](ctx, m.store, m.log, profileID, m.keys.Products, nil)
	s.Users = store.ReadJSON[[]models.User](ctx, m.store, m.log, profileID, m.keys.Users, nil)
	return s
}

type slot struct {
	key   string
	value any
}

// slots lists what gets persisted, in the shape it is stored.
func (m *Manager) slots(s *State) []slot {
	return []slot{
		{m.keys.Cart, s.Cart.Lines()},
		{m.keys.Wishlist, s.Wishlist},
		{m.keys.Theme, s.Theme},
		{m.keys.User, s.User},
		{m.keys.Orders, s.Orders.List()},
		{m.keys.Products, s.Products},
		{m.keys.Users, s.Users},
	}
}

func (m *Manager) snapshot(s *State) map[string][]byte {
	out := make(map[string][]byte)
	for _, sl := range m.slots(s) {
		raw, err := json.Marshal(sl.value)
		if err == nil {
			out[sl.key] = raw
		}
	}
	return out
}

func (m *Manager) save(ctx context.Context, s *State, before map[string][]byte) {
	for _, sl := range m.slots(s) {
		raw, err := json.Marshal(sl.value)
		if err == nil && bytes.Equal(raw, before[sl.key]) {
			continue
		}
		if sl.key == m.keys.User && s.User == nil {
			store.Remove(ctx, m.store, m.log, s.ProfileID, sl.key)
			continue
		}
		store.WriteJSON(ctx, m.store, m.log, s.ProfileID, sl.key, sl.value)
	}
}
