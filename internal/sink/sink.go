// Package sink writes serialized datasets to a destination: a local directory,
// an S3 bucket, or memory.
package sink

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

// Driver identifies a concrete sink implementation.
type Driver string

const (
	DriverFilesystem Driver = "fs"     // local directory (default)
	DriverS3         Driver = "s3"     // S3 / MinIO compatible
	DriverMemory     Driver = "memory" // in-process, tests and dry runs
)

// Content types for the two output shapes.
const (
	ContentTypeJSONL = "application/x-ndjson"
	ContentTypeJSON  = "application/json"
)

// ErrInvalidKey is returned for empty, absolute or escaping keys.
var ErrInvalidKey = errors.New("sink: invalid key")

// ErrUnknownDriver is returned by ParseDriver.
var ErrUnknownDriver = errors.New("sink: unknown driver")

// PutOptions specifies optional parameters for Put.
type PutOptions struct {
	ContentType string
	// Metadata is stored as user metadata where the driver supports it (S3)
	Metadata map[string]string
}

// Info describes a written object.
type Info struct {
	Key      string
	Location string // file path or s3:// URL
	Size     int64
}

// Sink stores one object per key, replacing anything already there.
type Sink interface {
	Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (Info, error)
	Driver() Driver
}

// ParseDriver maps a config value to a Driver.
func ParseDriver(s string) (Driver, error) {
	switch d := Driver(strings.ToLower(strings.TrimSpace(s))); d {
	case "", DriverFilesystem:
		return DriverFilesystem, nil
	case DriverS3, DriverMemory:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDriver, s)
}

// cleanKey rejects keys that are empty or escape the sink root, and
// normalizes separators to "/".
func cleanKey(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidKey)
	}
	key = strings.ReplaceAll(key, `\`, "/")
	if strings.HasPrefix(key, "/") {
		return "", fmt.Errorf("%w: absolute %q", ErrInvalidKey, key)
	}
	clean := path.Clean(key)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("%w: %q escapes root", ErrInvalidKey, key)
	}
	return clean, nil
}
