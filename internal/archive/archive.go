// Package archive keeps a history of generation runs in a storage.Backend:
// one manifest per run plus the serialized bytes of every dataset written.
package archive

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/mod/semver"

	"pkg.jsn.cam/dashmock/pkg/storage"
)

// SchemaVersion describes the record layout of archived payloads. Bump the
// major version when a field is renamed or removed.
const SchemaVersion = "v1.0.0"

var (
	ErrRunNotFound        = errors.New("run not found")
	ErrIncompatibleSchema = errors.New("incompatible archive schema")
)

var (
	runsBucket     = []byte("runs")
	payloadsBucket = []byte("payloads")
)

// Manifest describes one archived run.
type Manifest struct {
	RunID         string            `json:"run_id"`
	SchemaVersion string            `json:"schema_version"`
	Seed          uint64            `json:"seed"`
	Months        []string          `json:"months"`
	Counts        map[string]int    `json:"counts"`
	Paths         map[string]string `json:"paths"`
	CreatedAt     time.Time         `json:"created_at"`
}

// Archive stores runs in a backend it owns.
type Archive struct {
	backend storage.Backend
}

// New prepares the archive buckets in backend.
func New(backend storage.Backend) (*Archive, error) {
	if err := backend.EnsureBuckets(runsBucket, payloadsBucket); err != nil {
		return nil, fmt.Errorf("init archive: %w", err)
	}
	return &Archive{backend: backend}, nil
}

// Open opens a bbolt-backed archive at path.
func Open(path string) (*Archive, error) {
	backend, err := storage.NewBboltBackend(path)
	if err != nil {
		return nil, err
	}
	a, err := New(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}
	return a, nil
}

func payloadKey(runID, dataset string) []byte {
	return []byte(runID + "/" + dataset)
}

// Save stores every payload, then the manifest, so a manifest is only
// visible once its payloads are.
func (a *Archive) Save(m Manifest, payloads map[string][]byte) error {
	if m.RunID == "" {
		return fmt.Errorf("save run: empty run id")
	}
	if m.SchemaVersion == "" {
		m.SchemaVersion = SchemaVersion
	}

	names := make([]string, 0, len(payloads))
	for name := range payloads {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]storage.Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, storage.Entry{Key: payloadKey(m.RunID, name), Value: payloads[name]})
	}
	if err := a.backend.PutAll(payloadsBucket, entries); err != nil {
		return fmt.Errorf("save payloads for run %s: %w", m.RunID, err)
	}

	if err := storage.PutJSON(a.backend, runsBucket, m.RunID, m); err != nil {
		return fmt.Errorf("save manifest for run %s: %w", m.RunID, err)
	}
	return nil
}

// Manifest returns the manifest of one run.
func (a *Archive) Manifest(runID string) (Manifest, error) {
	var m Manifest
	found, err := storage.GetJSON(a.backend, runsBucket, runID, &m)
	if err != nil {
		return Manifest{}, err
	}
	if !found {
		return Manifest{}, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err := checkSchema(m.SchemaVersion); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// Runs lists manifests oldest first. Runs written with an incompatible
// schema are skipped.
func (a *Archive) Runs() ([]Manifest, error) {
	var runs []Manifest
	err := a.backend.ForEachPrefix(runsBucket, nil, func(k, v []byte) error {
		var m Manifest
		if err := storage.DecodeJSON(v, &m); err != nil {
			return fmt.Errorf("run %s: %w", k, err)
		}
		if checkSchema(m.SchemaVersion) != nil {
			return nil
		}
		runs = append(runs, m)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(runs, func(i, j int) bool { return runs[i].CreatedAt.Before(runs[j].CreatedAt) })
	return runs, nil
}

// Payload returns the archived bytes of one dataset of a run.
func (a *Archive) Payload(runID, dataset string) ([]byte, error) {
	if _, err := a.Manifest(runID); err != nil {
		return nil, err
	}
	data, err := a.backend.Get(payloadsBucket, payloadKey(runID, dataset))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("%w: %s has no dataset %s", ErrRunNotFound, runID, dataset)
	}
	return data, nil
}

// Close closes the underlying backend.
func (a *Archive) Close() error {
	return a.backend.Close()
}

// checkSchema accepts any version with the same major as SchemaVersion.
func checkSchema(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: invalid version %q", ErrIncompatibleSchema, v)
	}
	if semver.Major(v) != semver.Major(SchemaVersion) {
		return fmt.Errorf("%w: %s, want %s.x.x", ErrIncompatibleSchema, v, semver.Major(SchemaVersion))
	}
	return nil
}
