package sink

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// EncodeJSONL writes one compact JSON document per line. Non-ASCII text is
// written as UTF-8 and HTML characters are not escaped.
func EncodeJSONL[T any](w io.Writer, records []T) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for i, r := range records {
		// Encode terminates each document with '\n'
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode record %d: %w", i, err)
		}
	}
	return nil
}

// EncodeJSON writes v as a single JSON document indented by two spaces.
func EncodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return nil
}

// JSONL renders records into a buffer ready for Put.
func JSONL[T any](records []T) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	if err := EncodeJSONL(&buf, records); err != nil {
		return nil, err
	}
	return &buf, nil
}

// JSON renders v into a buffer ready for Put.
func JSON(v any) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	if err := EncodeJSON(&buf, v); err != nil {
		return nil, err
	}
	return &buf, nil
}
