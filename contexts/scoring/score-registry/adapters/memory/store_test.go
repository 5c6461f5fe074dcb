package memory

import (
	"bytes"
	"context"
	"testing"
)

func TestStoreLoadRoundTrip(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if _, found, err := store.Load(ctx, []byte("missing")); err != nil || found {
		t.Fatalf("expected clean miss, got found=%v err=%v", found, err)
	}

	if err := store.Store(ctx, []byte("owner"), []byte(`{"owner":"creator"}`)); err != nil {
		t.Fatalf("store failed: %v", err)
	}
	value, found, err := store.Load(ctx, []byte("owner"))
	if err != nil || !found {
		t.Fatalf("expected hit, got found=%v err=%v", found, err)
	}
	if !bytes.Equal(value, []byte(`{"owner":"creator"}`)) {
		t.Fatalf("unexpected value %q", value)
	}
}

func TestStoreOverwritesValue(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if err := store.Store(ctx, []byte("score/u"), []byte(`{"score":1}`)); err != nil {
		t.Fatalf("store failed: %v", err)
	}
	if err := store.Store(ctx, []byte("score/u"), []byte(`{"score":2}`)); err != nil {
		t.Fatalf("store failed: %v", err)
	}
	value, _, err := store.Load(ctx, []byte("score/u"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !bytes.Equal(value, []byte(`{"score":2}`)) {
		t.Fatalf("expected overwritten value, got %q", value)
	}
}

func TestRangeFiltersAndOrdersByKey(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	seed := map[string]string{
		"owner":         `{"owner":"creator"}`,
		"score/bravo":   `{"score":2}`,
		"score/alpha":   `{"score":1}`,
		"score/charlie": `{"score":3}`,
	}
	for key, value := range seed {
		if err := store.Store(ctx, []byte(key), []byte(value)); err != nil {
			t.Fatalf("store %q failed: %v", key, err)
		}
	}

	pairs, err := store.Range(ctx, []byte("score/"))
	if err != nil {
		t.Fatalf("range failed: %v", err)
	}
	if len(pairs) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(pairs))
	}
	want := []string{"score/alpha", "score/bravo", "score/charlie"}
	for i, key := range want {
		if string(pairs[i].Key) != key {
			t.Fatalf("expected key %d to be %q, got %q", i, key, pairs[i].Key)
		}
	}
}

func TestLoadReturnsCopy(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if err := store.Store(ctx, []byte("k"), []byte("abc")); err != nil {
		t.Fatalf("store failed: %v", err)
	}
	value, _, err := store.Load(ctx, []byte("k"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	value[0] = 'x'

	fresh, _, err := store.Load(ctx, []byte("k"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !bytes.Equal(fresh, []byte("abc")) {
		t.Fatalf("stored value aliased by caller mutation: %q", fresh)
	}
}
