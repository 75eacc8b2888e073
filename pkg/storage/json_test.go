package storage

import (
	"testing"
)

type testStruct struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func TestJSONHelpers(t *testing.T) {
	t.Run("PutAndGetJSON", func(t *testing.T) {
		backend := NewMemoryBackend()
		backend.EnsureBuckets([]byte("test"))

		original := testStruct{Name: "test", Value: 42}
		if err := PutJSON(backend, []byte("test"), "key1", original); err != nil {
			t.Fatalf("PutJSON failed: %v", err)
		}

		var got testStruct
		found, err := GetJSON(backend, []byte("test"), "key1", &got)
		if err != nil {
			t.Fatalf("GetJSON failed: %v", err)
		}
		if !found {
			t.Fatal("GetJSON reported missing key")
		}
		if got != original {
			t.Errorf("Got %+v, want %+v", got, original)
		}
	})

	t.Run("GetJSONNonExistent", func(t *testing.T) {
		backend := NewMemoryBackend()
		backend.EnsureBuckets([]byte("test"))

		var got testStruct
		found, err := GetJSON(backend, []byte("test"), "nonexistent", &got)
		if err != nil {
			t.Errorf("GetJSON should not error for non-existent key: %v", err)
		}
		if found {
			t.Error("GetJSON reported a missing key as found")
		}
		if got != (testStruct{}) {
			t.Errorf("Got %+v, want zero value", got)
		}
	})

	t.Run("GetJSONCorrupt", func(t *testing.T) {
		backend := NewMemoryBackend()
		backend.EnsureBuckets([]byte("test"))
		Put(backend, []byte("test"), "bad", []byte("{not json"))

		var got testStruct
		if _, err := GetJSON(backend, []byte("test"), "bad", &got); err == nil {
			t.Error("GetJSON should fail on corrupt data")
		}
	})
}
