package storage

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain"
)

func TestMemoryGetMissing(t *testing.T) {
	m := NewMemory()
	_, err := m.Get(context.Background(), "nope")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMemorySetGetRemove(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if err := m.Set(ctx, "auth_user", `{"id":"1"}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := m.Get(ctx, "auth_user")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != `{"id":"1"}` {
		t.Fatalf("unexpected value: %q", got)
	}

	if err := m.Remove(ctx, "auth_user"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := m.Get(ctx, "auth_user"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found after remove, got %v", err)
	}
}

func TestMemoryRemoveAbsentKey(t *testing.T) {
	m := NewMemory()
	if err := m.Remove(context.Background(), "never-set"); err != nil {
		t.Fatalf("remove of absent key should be nil, got %v", err)
	}
}

func TestMemoryOverwrite(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	_ = m.Set(ctx, "k", "a")
	_ = m.Set(ctx, "k", "b")
	got, err := m.Get(ctx, "k")
	if err != nil || got != "b" {
		t.Fatalf("expected b, got %q err=%v", got, err)
	}
}
