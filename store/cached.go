package store

import (
	"context"

	lru "github.com/hashicorp/golang-lru"
)

// Cached is a write-through LRU read cache in front of another Store.
type Cached struct {
	next  Store
	cache *lru.Cache
}

func NewCached(next Store, size int) (*Cached, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cached{next: next, cache: cache}, nil
}

func cacheKey(profileID, key string) string {
	return profileID + "\x00" + key
}

func (c *Cached) Get(ctx context.Context, profileID, key string) ([]byte, bool, error) {
	ck := cacheKey(profileID, key)
	if v, ok := c.cache.Get(ck); ok {
		return clone(v.([]byte)), true, nil
	}

	v, ok, err := c.next.Get(ctx, profileID, key)
	if err != nil || !ok {
		return v, ok, err
	}
	c.cache.Add(ck, clone(v))
	return v, true, nil
}

func (c *Cached) Put(ctx context.Context, profileID, key string, value []byte) error {
	ck := cacheKey(profileID, key)
	if err := c.next.Put(ctx, profileID, key, value); err != nil {
		c.cache.Remove(ck)
		return err
	}
	c.cache.Add(ck, clone(value))
	return nil
}

func (c *Cached) Delete(ctx context.Context, profileID, key string) error {
	c.cache.Remove(cacheKey(profileID, key))
	return c.next.Delete(ctx, profileID, key)
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
