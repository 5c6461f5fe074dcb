package ports

import (
	"context"
	"time"

	"tally/contexts/scoring/score-registry/domain/identity"
)

// KeyValue is one stored entry as seen by Range.
type KeyValue struct {
	Key   []byte
	Value []byte
}

// StateStore is the byte-addressed persistent store the host hands the
// registry. Each call is atomic; the host serializes invocations, so the
// registry itself never coordinates concurrent access.
type StateStore interface {
	Load(ctx context.Context, key []byte) ([]byte, bool, error)
	Store(ctx context.Context, key []byte, value []byte) error
	// Range returns every entry whose key starts with prefix, ordered by key.
	Range(ctx context.Context, prefix []byte) ([]KeyValue, error)
}

// ScoreEntry is one user's stored score.
type ScoreEntry struct {
	User  string
	Score uint32
}

// RegistryInfo is the instance metadata written at instantiation.
type RegistryInfo struct {
	Name           string
	Version        string
	InstanceID     string
	InstantiatedAt time.Time
}

// UpdateScoreInput carries the execute payload for a score mutation.
type UpdateScoreInput struct {
	User  identity.Identity
	Score uint32
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
