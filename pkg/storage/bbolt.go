package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// openTimeout bounds the wait for the file lock held by another process.
const openTimeout = time.Second

// BboltBackend implements Backend on a single bbolt file
type BboltBackend struct {
	db *bolt.DB
}

// NewBboltBackend opens (or creates) the database at dbPath, creating its directory if needed
func NewBboltBackend(dbPath string) (*BboltBackend, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := bolt.Open(dbPath, 0o600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("open bbolt database: %w", err)
	}

	return &BboltBackend{db: db}, nil
}

func (b *BboltBackend) EnsureBuckets(names ...[]byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		for _, name := range names {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		return nil
	})
}

func (b *BboltBackend) PutAll(bucket []byte, entries []Entry) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(bucket)
		if bkt == nil {
			return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
		}
		for _, e := range entries {
			if err := bkt.Put(e.Key, e.Value); err != nil {
				return err
			}
		}
		return nil
	})
}

func (b *BboltBackend) Get(bucket, key []byte) ([]byte, error) {
	var value []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(bucket)
		if bkt == nil {
			return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
		}
		// values are only valid for the life of the transaction
		if v := bkt.Get(key); v != nil {
			value = bytes.Clone(v)
		}
		return nil
	})
	return value, err
}

func (b *BboltBackend) ForEachPrefix(bucket, prefix []byte, fn func(k, v []byte) error) error {
	return b.db.View(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(bucket)
		if bkt == nil {
			return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
		}
		c := bkt.Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			if err := fn(k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (b *BboltBackend) Close() error {
	return b.db.Close()
}
