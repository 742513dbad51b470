package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	if got := Key("OctoCat", "user"); got != "octocat_user" {
		t.Errorf("Key = %q", got)
	}
	if got := Key("OctoCat", "repos"); got != "octocat_repos" {
		t.Errorf("Key = %q", got)
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	store.Set(ctx, "octocat_user", map[string]string{"name": "Octo"}, time.Minute)

	raw, ok := store.Get(ctx, "octocat_user")
	if !ok {
		t.Fatal("expected hit")
	}
	var got map[string]string
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["name"] != "Octo" {
		t.Errorf("value = %v", got)
	}
}

func TestMemoryStoreMissOnUnknownKey(t *testing.T) {
	store := NewMemoryStore()
	if _, ok := store.Get(context.Background(), "nope"); ok {
		t.Error("expected miss")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	store.Set(ctx, "k", "v", time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	if _, ok := store.Get(ctx, "k"); ok {
		t.Error("expired entry should miss")
	}
}

func TestMemoryStoreCorruptEnvelopeIsAMiss(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	store.mu.Lock()
	store.entries[KeyPrefix+"bad"] = []byte("{not json")
	store.mu.Unlock()

	if _, ok := store.Get(ctx, "bad"); ok {
		t.Error("corrupt envelope should miss")
	}
}

func TestMemoryStoreDeleteAndClear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	store.Set(ctx, "a", 1, time.Minute)
	store.Set(ctx, "b", 2, time.Minute)

	store.Delete(ctx, "a")
	if _, ok := store.Get(ctx, "a"); ok {
		t.Error("deleted entry should miss")
	}
	if _, ok := store.Get(ctx, "b"); !ok {
		t.Error("unrelated entry lost")
	}

	store.Clear(ctx)
	if _, ok := store.Get(ctx, "b"); ok {
		t.Error("clear should drop everything")
	}
}

func TestEnvelopeCarriesEpochMillisExpiry(t *testing.T) {
	now := time.Now()
	raw, err := wrap("v", 10*time.Minute, now)
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := now.Add(10 * time.Minute).UnixMilli()
	if env.Expiry != want {
		t.Errorf("expiry = %d, want %d", env.Expiry, want)
	}
	if env.expired(now) {
		t.Error("fresh entry reported expired")
	}
	if !env.expired(now.Add(11 * time.Minute)) {
		t.Error("stale entry reported fresh")
	}
}
