package application

import (
	"context"
	"errors"
	"maps"
)

// memState is an in-memory ports.StateStore
type memState struct {
	values  map[string][]byte
	failErr error // Returned by Update when set
	updates int
}

func newMemState() *memState {
	return &memState{values: make(map[string][]byte)}
}

func (m *memState) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memState) Update(_ context.Context, key string, value []byte) error {
	if m.failErr != nil {
		return m.failErr
	}
	m.updates++
	m.values[key] = append([]byte(nil), value...)
	return nil
}

func (m *memState) snapshot() map[string][]byte {
	return maps.Clone(m.values)
}

var errDiskFull = errors.New("disk full")

// fakeFS reports existence from a fixed set of paths
type fakeFS map[string]bool

func (f fakeFS) Exists(path string) bool {
	return f[path]
}

// recordingContext records the last value set for each key
type recordingContext map[string]bool

func (r recordingContext) SetContext(key string, value bool) {
	r[key] = value
}
