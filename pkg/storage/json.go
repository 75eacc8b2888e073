package storage

import (
	"encoding/json"
	"fmt"
)

// PutJSON stores a JSON-encoded value under key
func PutJSON(b Backend, bucket []byte, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return Put(b, bucket, key, data)
}

// GetJSON decodes the value under key into v. It reports false, without
// touching v, when the key does not exist.
func GetJSON(b Backend, bucket []byte, key string, v any) (bool, error) {
	data, err := GetString(b, bucket, key)
	if err != nil {
		return false, err
	}

	if data == nil {
		return false, nil
	}

	if err := DecodeJSON(data, v); err != nil {
		return false, err
	}

	return true, nil
}

// DecodeJSON unmarshals JSON bytes to a value
func DecodeJSON(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode JSON: %w", err)
	}

	return nil
}
