package application

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"tally/contexts/scoring/score-registry/adapters/memory"
	domainerrors "tally/contexts/scoring/score-registry/domain/errors"
	"tally/contexts/scoring/score-registry/domain/identity"
	"tally/contexts/scoring/score-registry/ports"
)

func newTestService() (Service, *memory.Store) {
	store := memory.NewStore()
	return Service{
		State: store,
		Clock: memory.SystemClock{},
		IDGen: memory.UUIDGenerator{},
	}, store
}

func mustInstantiate(t *testing.T, service Service, caller string) {
	t.Helper()
	if _, err := service.Instantiate(context.Background(), identity.New(caller)); err != nil {
		t.Fatalf("instantiate by %q failed: %v", caller, err)
	}
}

func mustUpdateScore(t *testing.T, service Service, caller string, user string, score uint32) {
	t.Helper()
	_, err := service.UpdateScore(context.Background(), identity.New(caller), ports.UpdateScoreInput{
		User:  identity.New(user),
		Score: score,
	})
	if err != nil {
		t.Fatalf("update score for %q by %q failed: %v", user, caller, err)
	}
}

func getScore(t *testing.T, service Service, user string) uint32 {
	t.Helper()
	score, err := service.GetScore(context.Background(), identity.New(user))
	if err != nil {
		t.Fatalf("get score for %q failed: %v", user, err)
	}
	return score
}

func TestInstantiateRecordsOwner(t *testing.T) {
	service, _ := newTestService()
	mustInstantiate(t, service, "creator")

	owner, err := service.GetOwner(context.Background())
	if err != nil {
		t.Fatalf("get owner failed: %v", err)
	}
	if owner.String() != "creator" {
		t.Fatalf("expected owner creator, got %q", owner.String())
	}
}

func TestInstantiateWritesInstanceInfo(t *testing.T) {
	service, _ := newTestService()
	mustInstantiate(t, service, "creator")

	info, err := service.GetInfo(context.Background())
	if err != nil {
		t.Fatalf("get info failed: %v", err)
	}
	if info.Name == "" || info.Version == "" || info.InstanceID == "" {
		t.Fatalf("expected populated info record, got %+v", info)
	}
	if info.InstantiatedAt.IsZero() {
		t.Fatalf("expected instantiation timestamp, got zero")
	}
}

func TestInstantiateTwiceFails(t *testing.T) {
	service, _ := newTestService()
	mustInstantiate(t, service, "creator")

	_, err := service.Instantiate(context.Background(), identity.New("someone_new"))
	if !errors.Is(err, domainerrors.ErrAlreadyInitialized) {
		t.Fatalf("expected already initialized error, got %v", err)
	}

	owner, err := service.GetOwner(context.Background())
	if err != nil {
		t.Fatalf("get owner failed: %v", err)
	}
	if owner.String() != "creator" {
		t.Fatalf("owner changed after failed re-instantiation: %q", owner.String())
	}
}

func TestInstantiateRequiresIdentity(t *testing.T) {
	service, _ := newTestService()
	if _, err := service.Instantiate(context.Background(), identity.New("  ")); !errors.Is(err, domainerrors.ErrInvalidIdentity) {
		t.Fatalf("expected invalid identity error, got %v", err)
	}
}

func TestUpdateScoreSetsUserScore(t *testing.T) {
	service, _ := newTestService()
	mustInstantiate(t, service, "creator")

	result, err := service.UpdateScore(context.Background(), identity.New("creator"), ports.UpdateScoreInput{
		User:  identity.New("creator"),
		Score: 1120,
	})
	if err != nil {
		t.Fatalf("update score failed: %v", err)
	}
	if len(result.Attributes) != 1 || result.Attributes[0].Key != "method" || result.Attributes[0].Value != "try_update_score" {
		t.Fatalf("expected method attribute try_update_score, got %+v", result.Attributes)
	}
	if score := getScore(t, service, "creator"); score != 1120 {
		t.Fatalf("expected score 1120, got %d", score)
	}
}

func TestUpdateScoreRejectsNonOwner(t *testing.T) {
	service, store := newTestService()
	mustInstantiate(t, service, "creator")
	mustUpdateScore(t, service, "creator", "creator", 1120)

	before := store.Snapshot()
	_, err := service.UpdateScore(context.Background(), identity.New("someone_new"), ports.UpdateScoreInput{
		User:  identity.New("creator"),
		Score: 500,
	})
	if !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}

	after := store.Snapshot()
	if len(before) != len(after) {
		t.Fatalf("state mutated by unauthorized call: %d entries became %d", len(before), len(after))
	}
	for key, value := range before {
		if !bytes.Equal(after[key], value) {
			t.Fatalf("entry %q mutated by unauthorized call", key)
		}
	}
	if score := getScore(t, service, "creator"); score != 1120 {
		t.Fatalf("expected score 1120 after rejected update, got %d", score)
	}
}

func TestUpdateScoreCallerComparisonIsCaseSensitive(t *testing.T) {
	service, _ := newTestService()
	mustInstantiate(t, service, "creator")

	_, err := service.UpdateScore(context.Background(), identity.New("Creator"), ports.UpdateScoreInput{
		User:  identity.New("creator"),
		Score: 1,
	})
	if !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized error for case-variant caller, got %v", err)
	}
}

func TestUpdateScoreBeforeInstantiationFails(t *testing.T) {
	service, _ := newTestService()
	_, err := service.UpdateScore(context.Background(), identity.New("creator"), ports.UpdateScoreInput{
		User:  identity.New("creator"),
		Score: 1,
	})
	if !errors.Is(err, domainerrors.ErrUninitialized) {
		t.Fatalf("expected uninitialized error, got %v", err)
	}
}

func TestUpdateScoreOverwritesExistingEntry(t *testing.T) {
	service, _ := newTestService()
	mustInstantiate(t, service, "creator")

	mustUpdateScore(t, service, "creator", "player", 1120)
	mustUpdateScore(t, service, "creator", "player", 500)
	if score := getScore(t, service, "player"); score != 500 {
		t.Fatalf("expected overwrite to 500, got %d", score)
	}

	mustUpdateScore(t, service, "creator", "player", 501)
	if score := getScore(t, service, "player"); score != 501 {
		t.Fatalf("expected overwrite to 501, got %d", score)
	}
}

func TestUpdateScoreIsolatedAcrossUsers(t *testing.T) {
	service, _ := newTestService()
	mustInstantiate(t, service, "creator")

	mustUpdateScore(t, service, "creator", "creator", 123)
	mustUpdateScore(t, service, "creator", "new_human", 456)

	if score := getScore(t, service, "creator"); score != 123 {
		t.Fatalf("expected creator score 123, got %d", score)
	}
	if score := getScore(t, service, "new_human"); score != 456 {
		t.Fatalf("expected new_human score 456, got %d", score)
	}
}

func TestGetScoreDefaultsToZero(t *testing.T) {
	service, _ := newTestService()
	mustInstantiate(t, service, "creator")

	if score := getScore(t, service, "nobody"); score != 0 {
		t.Fatalf("expected default score 0, got %d", score)
	}

	// A stored zero reads the same as no entry at all.
	mustUpdateScore(t, service, "creator", "zeroed", 0)
	if score := getScore(t, service, "zeroed"); score != 0 {
		t.Fatalf("expected stored zero, got %d", score)
	}
}

func TestGetOwnerBeforeInstantiationFails(t *testing.T) {
	service, _ := newTestService()
	if _, err := service.GetOwner(context.Background()); !errors.Is(err, domainerrors.ErrUninitialized) {
		t.Fatalf("expected uninitialized error, got %v", err)
	}
}

func TestGetInfoBeforeInstantiationFails(t *testing.T) {
	service, _ := newTestService()
	if _, err := service.GetInfo(context.Background()); !errors.Is(err, domainerrors.ErrUninitialized) {
		t.Fatalf("expected uninitialized error, got %v", err)
	}
}

func TestListScoresReturnsEntriesInKeyOrder(t *testing.T) {
	service, _ := newTestService()
	mustInstantiate(t, service, "creator")

	mustUpdateScore(t, service, "creator", "bravo", 2)
	mustUpdateScore(t, service, "creator", "alpha", 1)
	mustUpdateScore(t, service, "creator", "charlie", 3)

	entries, err := service.ListScores(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("list scores failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	want := []string{"alpha", "bravo", "charlie"}
	for i, user := range want {
		if entries[i].User != user {
			t.Fatalf("expected entry %d to be %q, got %q", i, user, entries[i].User)
		}
	}
}

func TestListScoresPagination(t *testing.T) {
	service, _ := newTestService()
	mustInstantiate(t, service, "creator")

	mustUpdateScore(t, service, "creator", "alpha", 1)
	mustUpdateScore(t, service, "creator", "bravo", 2)
	mustUpdateScore(t, service, "creator", "charlie", 3)

	page, err := service.ListScores(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("list scores failed: %v", err)
	}
	if len(page) != 1 || page[0].User != "bravo" {
		t.Fatalf("expected single entry bravo, got %+v", page)
	}

	empty, err := service.ListScores(context.Background(), 10, 10)
	if err != nil {
		t.Fatalf("list scores failed: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty page past the end, got %+v", empty)
	}

	if _, err := service.ListScores(context.Background(), -1, 0); !errors.Is(err, domainerrors.ErrInvalidListQuery) {
		t.Fatalf("expected invalid list query error, got %v", err)
	}
}
