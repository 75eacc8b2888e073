package storage

import "errors"

// ErrBucketNotFound is returned when an operation names a bucket that was never created.
var ErrBucketNotFound = errors.New("bucket not found")

// Backend is a bucketed key-value store holding archived generation runs.
// Keys iterate in byte order in every implementation.
type Backend interface {
	// EnsureBuckets creates any missing buckets; existing ones are left untouched
	EnsureBuckets(names ...[]byte) error

	// PutAll writes every entry into bucket in a single transaction
	PutAll(bucket []byte, entries []Entry) error

	// Get returns a copy of the value, or nil if the key does not exist
	Get(bucket, key []byte) ([]byte, error)

	// ForEachPrefix visits keys starting with prefix in ascending order.
	// An empty prefix visits the whole bucket.
	ForEachPrefix(bucket, prefix []byte, fn func(k, v []byte) error) error

	Close() error
}

// Entry is one key-value pair of a batch write.
type Entry struct {
	Key   []byte
	Value []byte
}

// Put is a convenience wrapper for a single-entry PutAll
func Put(b Backend, bucket []byte, key string, value []byte) error {
	return b.PutAll(bucket, []Entry{{Key: []byte(key), Value: value}})
}

// GetString is a convenience wrapper that converts string keys to []byte
func GetString(b Backend, bucket []byte, key string) ([]byte, error) {
	return b.Get(bucket, []byte(key))
}
