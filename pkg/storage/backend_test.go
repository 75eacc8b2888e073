package storage

import (
	"bytes"
	"errors"
	"testing"
)

// backendTestSuite runs the shared contract tests against any Backend implementation
func backendTestSuite(t *testing.T, newBackend func() (Backend, func(), error)) {
	open := func(t *testing.T) Backend {
		t.Helper()
		backend, cleanup, err := newBackend()
		if err != nil {
			t.Fatalf("failed to create backend: %v", err)
		}
		t.Cleanup(cleanup)
		return backend
	}

	t.Run("EnsureBuckets", func(t *testing.T) {
		backend := open(t)

		if err := backend.EnsureBuckets([]byte("runs"), []byte("datasets")); err != nil {
			t.Fatalf("EnsureBuckets failed: %v", err)
		}
		if err := Put(backend, []byte("runs"), "k", []byte("v")); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		// Idempotent, and keeps existing data
		if err := backend.EnsureBuckets([]byte("runs")); err != nil {
			t.Fatalf("EnsureBuckets should be idempotent: %v", err)
		}
		got, _ := GetString(backend, []byte("runs"), "k")
		if !bytes.Equal(got, []byte("v")) {
			t.Errorf("existing key lost after EnsureBuckets, got %q", got)
		}
	})

	t.Run("MissingBucket", func(t *testing.T) {
		backend := open(t)

		if err := Put(backend, []byte("missing"), "k", []byte("v")); !errors.Is(err, ErrBucketNotFound) {
			t.Errorf("Put error = %v, want ErrBucketNotFound", err)
		}
		if _, err := backend.Get([]byte("missing"), []byte("k")); !errors.Is(err, ErrBucketNotFound) {
			t.Errorf("Get error = %v, want ErrBucketNotFound", err)
		}
		err := backend.ForEachPrefix([]byte("missing"), nil, func(k, v []byte) error { return nil })
		if !errors.Is(err, ErrBucketNotFound) {
			t.Errorf("ForEachPrefix error = %v, want ErrBucketNotFound", err)
		}
	})

	t.Run("PutAllAndGet", func(t *testing.T) {
		backend := open(t)
		backend.EnsureBuckets([]byte("test"))

		entries := []Entry{
			{Key: []byte("key1"), Value: []byte("value1")},
			{Key: []byte("key2"), Value: []byte("value2")},
		}
		if err := backend.PutAll([]byte("test"), entries); err != nil {
			t.Fatalf("PutAll failed: %v", err)
		}

		for _, e := range entries {
			got, err := backend.Get([]byte("test"), e.Key)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if !bytes.Equal(got, e.Value) {
				t.Errorf("Get(%s) = %s, want %s", e.Key, got, e.Value)
			}
		}

		// Non-existent key
		got, err := backend.Get([]byte("test"), []byte("nonexistent"))
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got != nil {
			t.Errorf("Get should return nil for non-existent key, got %s", got)
		}
	})

	t.Run("ValuesAreCopied", func(t *testing.T) {
		backend := open(t)
		backend.EnsureBuckets([]byte("test"))

		value := []byte("original")
		Put(backend, []byte("test"), "k", value)
		value[0] = 'X'

		got, _ := GetString(backend, []byte("test"), "k")
		if string(got) != "original" {
			t.Errorf("stored value changed with caller's slice: %s", got)
		}
	})

	t.Run("ForEachPrefix", func(t *testing.T) {
		backend := open(t)
		backend.EnsureBuckets([]byte("test"))

		backend.PutAll([]byte("test"), []Entry{
			{Key: []byte("run-b/orders"), Value: []byte("2")},
			{Key: []byte("run-a/labs"), Value: []byte("1")},
			{Key: []byte("run-a/batches"), Value: []byte("0")},
			{Key: []byte("run-c/orders"), Value: []byte("3")},
		})

		var keys []string
		err := backend.ForEachPrefix([]byte("test"), []byte("run-a/"), func(k, v []byte) error {
			keys = append(keys, string(k))
			return nil
		})
		if err != nil {
			t.Fatalf("ForEachPrefix failed: %v", err)
		}
		if len(keys) != 2 || keys[0] != "run-a/batches" || keys[1] != "run-a/labs" {
			t.Errorf("prefix scan = %v, want [run-a/batches run-a/labs]", keys)
		}

		var all []string
		backend.ForEachPrefix([]byte("test"), nil, func(k, v []byte) error {
			all = append(all, string(k))
			return nil
		})
		want := []string{"run-a/batches", "run-a/labs", "run-b/orders", "run-c/orders"}
		if len(all) != len(want) {
			t.Fatalf("full scan = %v, want %v", all, want)
		}
		for i := range want {
			if all[i] != want[i] {
				t.Errorf("full scan[%d] = %s, want %s", i, all[i], want[i])
			}
		}
	})

	t.Run("ForEachPrefixStopsOnError", func(t *testing.T) {
		backend := open(t)
		backend.EnsureBuckets([]byte("test"))
		backend.PutAll([]byte("test"), []Entry{
			{Key: []byte("a"), Value: []byte("1")},
			{Key: []byte("b"), Value: []byte("2")},
		})

		stop := errors.New("stop")
		visited := 0
		err := backend.ForEachPrefix([]byte("test"), nil, func(k, v []byte) error {
			visited++
			return stop
		})
		if !errors.Is(err, stop) {
			t.Errorf("ForEachPrefix error = %v, want stop", err)
		}
		if visited != 1 {
			t.Errorf("visited %d keys after error, want 1", visited)
		}
	})
}
