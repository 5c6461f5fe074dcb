package memory

import (
	"bytes"
	"context"
	"sort"
	"sync"
	"time"

	"tally/contexts/scoring/score-registry/ports"

	"github.com/google/uuid"
)

// Store is the in-memory StateStore used by tests and the memory backend.
// The host serializes registry invocations, but HTTP handlers may still race
// on reads, so the map is mutex-guarded.
type Store struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewStore() *Store {
	return &Store{entries: make(map[string][]byte)}
}

func (s *Store) Load(_ context.Context, key []byte) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[string(key)]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

func (s *Store) Store(_ context.Context, key []byte, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[string(key)] = append([]byte(nil), value...)
	return nil
}

func (s *Store) Range(_ context.Context, prefix []byte) ([]ports.KeyValue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pairs := make([]ports.KeyValue, 0)
	for key, value := range s.entries {
		if !bytes.HasPrefix([]byte(key), prefix) {
			continue
		}
		pairs = append(pairs, ports.KeyValue{
			Key:   []byte(key),
			Value: append([]byte(nil), value...),
		})
	}
	sort.Slice(pairs, func(i, j int) bool {
		return bytes.Compare(pairs[i].Key, pairs[j].Key) < 0
	})
	return pairs, nil
}

// Snapshot copies the full entry map, for byte-for-byte assertions in tests.
func (s *Store) Snapshot() map[string][]byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[string][]byte, len(s.entries))
	for key, value := range s.entries {
		snapshot[key] = append([]byte(nil), value...)
	}
	return snapshot
}

// SystemClock implements ports.Clock on the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// UUIDGenerator implements ports.IDGenerator using RFC 4122 UUID v4 values.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

var _ ports.StateStore = (*Store)(nil)
