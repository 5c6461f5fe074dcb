package application

import (
	"context"
	"log/slog"
	"time"

	domainerrors "tally/contexts/scoring/score-registry/domain/errors"
	"tally/contexts/scoring/score-registry/domain/identity"
	"tally/contexts/scoring/score-registry/ports"
	"tally/contexts/scoring/score-registry/state"
)

const (
	registryName    = "tally:score-registry"
	registryVersion = "1.0.0"
)

// Attribute is one key/value pair attached to an execute response.
type Attribute struct {
	Key   string
	Value string
}

type InstantiateResult struct {
	Info ports.RegistryInfo
}

type UpdateScoreResult struct {
	Attributes []Attribute
}

// Service holds the registry's three handlers. State is the only shared
// resource; every invocation is a pure function of (state, caller, message).
type Service struct {
	State  ports.StateStore
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

// Instantiate records the invoking identity as the registry owner. The host
// calls it once per instance lifetime; a second call fails without mutating
// anything.
func (s Service) Instantiate(ctx context.Context, caller identity.Identity) (InstantiateResult, error) {
	if caller.IsZero() {
		return InstantiateResult{}, domainerrors.ErrInvalidIdentity
	}

	_, found, err := s.loadOwner(ctx)
	if err != nil {
		return InstantiateResult{}, err
	}
	if found {
		return InstantiateResult{}, domainerrors.ErrAlreadyInitialized
	}

	ownerRaw, err := state.EncodeOwner(caller)
	if err != nil {
		return InstantiateResult{}, err
	}
	if err := s.State.Store(ctx, state.OwnerKey(), ownerRaw); err != nil {
		return InstantiateResult{}, err
	}

	instanceID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return InstantiateResult{}, err
	}
	info := ports.RegistryInfo{
		Name:           registryName,
		Version:        registryVersion,
		InstanceID:     instanceID,
		InstantiatedAt: s.now(),
	}
	infoRaw, err := state.EncodeInfo(info)
	if err != nil {
		return InstantiateResult{}, err
	}
	if err := s.State.Store(ctx, state.InfoKey(), infoRaw); err != nil {
		return InstantiateResult{}, err
	}

	resolveLogger(s.Logger).Info("registry instantiated",
		"event", "registry_instantiated",
		"module", "scoring/score-registry",
		"layer", "application",
		"owner", caller.String(),
		"instance_id", info.InstanceID,
	)
	return InstantiateResult{Info: info}, nil
}

// UpdateScore sets user's score to the given value. Only the recorded owner
// may call it; the write is an unconditional overwrite, so repeated updates
// always land the most recent value.
func (s Service) UpdateScore(
	ctx context.Context,
	caller identity.Identity,
	input ports.UpdateScoreInput,
) (UpdateScoreResult, error) {
	if caller.IsZero() || input.User.IsZero() {
		return UpdateScoreResult{}, domainerrors.ErrInvalidIdentity
	}

	owner, found, err := s.loadOwner(ctx)
	if err != nil {
		return UpdateScoreResult{}, err
	}
	if !found {
		return UpdateScoreResult{}, domainerrors.ErrUninitialized
	}
	if !caller.Equal(owner) {
		return UpdateScoreResult{}, domainerrors.ErrUnauthorized
	}

	previous, err := s.loadScore(ctx, input.User.String())
	if err != nil {
		return UpdateScoreResult{}, err
	}

	raw, err := state.EncodeScore(input.Score)
	if err != nil {
		return UpdateScoreResult{}, err
	}
	if err := s.State.Store(ctx, state.ScoreKey(input.User.String()), raw); err != nil {
		return UpdateScoreResult{}, err
	}

	resolveLogger(s.Logger).Info("score updated",
		"event", "registry_score_updated",
		"module", "scoring/score-registry",
		"layer", "application",
		"user", input.User.String(),
		"previous_score", previous,
		"score", input.Score,
	)
	return UpdateScoreResult{
		Attributes: []Attribute{{Key: "method", Value: "try_update_score"}},
	}, nil
}

// GetOwner returns the recorded owner identity.
func (s Service) GetOwner(ctx context.Context) (identity.Identity, error) {
	owner, found, err := s.loadOwner(ctx)
	if err != nil {
		return identity.Identity{}, err
	}
	if !found {
		return identity.Identity{}, domainerrors.ErrUninitialized
	}
	return owner, nil
}

// GetScore returns user's stored score. A user with no entry reads as 0,
// indistinguishable from a stored zero.
func (s Service) GetScore(ctx context.Context, user identity.Identity) (uint32, error) {
	return s.loadScore(ctx, user.String())
}

// ListScores returns stored entries in key order. Absent users do not appear;
// they still read as zero through GetScore.
func (s Service) ListScores(ctx context.Context, limit int, offset int) ([]ports.ScoreEntry, error) {
	if limit < 0 || offset < 0 {
		return nil, domainerrors.ErrInvalidListQuery
	}
	if limit == 0 {
		limit = 50
	}

	pairs, err := s.State.Range(ctx, state.ScorePrefix())
	if err != nil {
		return nil, err
	}

	entries := make([]ports.ScoreEntry, 0, len(pairs))
	for _, pair := range pairs {
		score, err := state.DecodeScore(pair.Value)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ports.ScoreEntry{
			User:  state.UserFromScoreKey(pair.Key),
			Score: score,
		})
	}
	if offset >= len(entries) {
		return []ports.ScoreEntry{}, nil
	}
	end := offset + limit
	if end > len(entries) {
		end = len(entries)
	}
	return append([]ports.ScoreEntry(nil), entries[offset:end]...), nil
}

// GetInfo returns the metadata record written at instantiation.
func (s Service) GetInfo(ctx context.Context) (ports.RegistryInfo, error) {
	raw, found, err := s.State.Load(ctx, state.InfoKey())
	if err != nil {
		return ports.RegistryInfo{}, err
	}
	if !found {
		return ports.RegistryInfo{}, domainerrors.ErrUninitialized
	}
	return state.DecodeInfo(raw)
}

func (s Service) loadOwner(ctx context.Context) (identity.Identity, bool, error) {
	raw, found, err := s.State.Load(ctx, state.OwnerKey())
	if err != nil || !found {
		return identity.Identity{}, false, err
	}
	owner, err := state.DecodeOwner(raw)
	if err != nil {
		return identity.Identity{}, false, err
	}
	return owner, true, nil
}

func (s Service) loadScore(ctx context.Context, user string) (uint32, error) {
	raw, found, err := s.State.Load(ctx, state.ScoreKey(user))
	if err != nil || !found {
		return 0, err
	}
	return state.DecodeScore(raw)
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
