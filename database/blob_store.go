package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"storefront/store"
)

var _ store.Store = (*BlobStore)(nil)

// BlobStore keeps each profile's persisted values as rows of profile_blobs.
type BlobStore struct {
	db *sqlx.DB
	// MaxValueBytes rejects larger values with store.ErrQuotaExceeded when positive.
	MaxValueBytes int
	now           func() time.Time
}

func NewBlobStore(db *sqlx.DB) *BlobStore {
	return &BlobStore{db: db, MaxValueBytes: 5 << 20, now: time.Now}
}

func (s *BlobStore) Get(ctx context.Context, profileID, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.GetContext(ctx, &value,
		"SELECT value FROM profile_blobs WHERE profile_id = ? AND blob_key = ?",
		profileID, key,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select %s: %w", key, err)
	}
	return value, true, nil
}

func (s *BlobStore) Put(ctx context.Context, profileID, key string, value []byte) error {
	if s.MaxValueBytes > 0 && len(value) > s.MaxValueBytes {
		return store.ErrQuotaExceeded
	}

	var query string
	if s.db.DriverName() == DriverMySQL {
		query = `INSERT INTO profile_blobs (profile_id, blob_key, value, updated_at) VALUES (?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE value = VALUES(value), updated_at = VALUES(updated_at)`
	} else {
		query = `INSERT INTO profile_blobs (profile_id, blob_key, value, updated_at) VALUES (?, ?, ?, ?)
			ON CONFLICT (profile_id, blob_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	}

	if _, err := s.db.ExecContext(ctx, query, profileID, key, value, s.now().UTC()); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (s *BlobStore) Delete(ctx context.Context, profileID, key string) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM profile_blobs WHERE profile_id = ? AND blob_key = ?",
		profileID, key,
	); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
