// Package store holds the per-profile key-value contract behind every persisted blob
// (cart, wishlist, theme, user, order history, admin lists).
//
// Values are whole JSON documents: callers read the entire collection, mutate it in memory
// and write it back. There are no partial updates and no transactions across keys.
package store

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
)

// ErrQuotaExceeded is returned by stores that cap the bytes kept per profile.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

type Store interface {
	Get(ctx context.Context, profileID, key string) ([]byte, bool, error)
	Put(ctx context.Context, profileID, key string, value []byte) error
	Delete(ctx context.Context, profileID, key string) error
}

// ReadJSON decodes the blob stored under key. A missing, unreadable or corrupt value yields
// fallback; failures are logged and never returned.
func ReadJSON[T any](ctx context.Context, s Store, log *zap.Logger, profileID, key string, fallback T) T {
	raw, ok, err := s.Get(ctx, profileID, key)
	if err != nil {
		log.Warn("failed to read persisted value", zap.String("key", key), zap.Error(err))
		return fallback
	}
	if !ok || len(raw) == 0 {
		return fallback
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Warn("corrupt persisted value, using default", zap.String("key", key), zap.Error(err))
		return fallback
	}
	return out
}

// WriteJSON encodes v and stores it under key. It reports whether the write landed;
// failures are logged and otherwise ignored.
func WriteJSON(ctx context.Context, s Store, log *zap.Logger, profileID, key string, v any) bool {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Warn("failed to encode value", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := s.Put(ctx, profileID, key, raw); err != nil {
		log.Warn("failed to persist value", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Remove deletes key, logging failures.
func Remove(ctx context.Context, s Store, log *zap.Logger, profileID, key string) bool {
	if err := s.Delete(ctx, profileID, key); err != nil {
		log.Warn("failed to delete value", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}
