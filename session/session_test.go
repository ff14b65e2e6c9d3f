package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront/catalog"
	"storefront/config"
	"storefront/models"
	"storefront/store"
)

type countingStore struct {
	store.Store
	mu   sync.Mutex
	puts map[string]int
}

func (c *countingStore) Put(ctx context.Context, profileID, key string, value []byte) error {
	c.mu.Lock()
	c.puts[key]++
	c.mu.Unlock()
	return c.Store.Put(ctx, profileID, key, value)
}

func newManager(t *testing.T) (*Manager, *countingStore) {
	t.Helper()
	cs := &countingStore{Store: store.NewMemoryStore(), puts: make(map[string]int)}
	return NewManager(cs, zap.NewNop(), config.DefaultKeys()), cs
}

func TestDo_PersistsAcrossCalls(t *testing.T) {
	m, _ := newManager(t)
	ctx := context.Background()
	p, _ := catalog.Find(catalog.Seed(), 2)

	require.NoError(t, m.Do(ctx, "p1", func(s *State) error {
		s.Cart.Add(p)
		s.ToggleWishlist(p.ID)
		return nil
	}))

	require.NoError(t, m.Do(ctx, "p1", func(s *State) error {
		assert.Equal(t, 1, s.Cart.Len())
		assert.Equal(t, []int64{2}, s.Wishlist)
		return nil
	}))

	require.NoError(t, m.Do(ctx, "p2", func(s *State) error {
		assert.Zero(t, s.Cart.Len(), "profiles do not share state")
		assert.Equal(t, ThemeLight, s.Theme)
		return nil
	}))
}

func TestDo_WritesOnlyChangedValues(t *testing.T) {
	m, cs := newManager(t)
	ctx := context.Background()

	require.NoError(t, m.Do(ctx, "p1", func(s *State) error { return nil }))
	assert.Empty(t, cs.puts)

	require.NoError(t, m.Do(ctx, "p1", func(s *State) error {
		s.ToggleTheme()
		return nil
	}))
	assert.Equal(t, map[string]int{"aagadgets_theme": 1}, cs.puts)
}

func TestDo_ErrorSkipsSave(t *testing.T) {
	m, cs := newManager(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := m.Do(ctx, "p1", func(s *State) error {
		s.ToggleTheme()
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, cs.puts)
}

func TestDo_LogoutDeletesUser(t *testing.T) {
	m, cs := newManager(t)
	ctx := context.Background()

	require.NoError(t, m.Do(ctx, "p1", func(s *State) error {
		s.User = &models.User{Name: "ann", Email: "ann@x"}
		return nil
	}))
	require.NoError(t, m.Do(ctx, "p1", func(s *State) error {
		require.NotNil(t, s.User)
		s.User = nil
		return nil
	}))

	_, ok, err := cs.Get(ctx, "p1", "aagadgets_user")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDo_CorruptValueFallsBack(t *testing.T) {
	m, cs := newManager(t)
	ctx := context.Background()
	require.NoError(t, cs.Store.Put(ctx, "p1", "aagadgets_cart", []byte(`{"not":"a list"`)))

	require.NoError(t, m.Do(ctx, "p1", func(s *State) error {
		assert.Zero(t, s.Cart.Len())
		return nil
	}))
}

func TestDo_SerialisesSameProfile(t *testing.T) {
	m, _ := newManager(t)
	ctx := context.Background()
	p, _ := catalog.Find(catalog.Seed(), 13)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Do(ctx, "p1", func(s *State) error {
				s.Cart.Add(p)
				return nil
			})
		}()
	}
	wg.Wait()

	require.NoError(t, m.Do(ctx, "p1", func(s *State) error {
		lines := s.Cart.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 50, lines[0].Quantity)
		return nil
	}))
	assert.Empty(t, m.locks, "idle profiles release their lock")
}

func TestState_Toggles(t *testing.T) {
	s := &State{Theme: ThemeLight}
	assert.Equal(t, ThemeDark, s.ToggleTheme())
	assert.Equal(t, ThemeLight, s.ToggleTheme())

	assert.True(t, s.ToggleWishlist(5))
	assert.True(t, s.ToggleWishlist(7))
	assert.False(t, s.ToggleWishlist(5))
	assert.Equal(t, []int64{7}, s.Wishlist)
}

func TestState_CatalogMergesAdminProducts(t *testing.T) {
	s := &State{Products: []models.Product{{ID: 1, Name: "iPhone 15 Pro (витрина)", Category: models.CategoryIPhone, Price: 99990}}}
	products := s.Catalog()
	assert.Len(t, products, 14)
	assert.Equal(t, "iPhone 15 Pro (витрина)", products[0].Name)
}
