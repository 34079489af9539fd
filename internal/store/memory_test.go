package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemory_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) = %v, want ErrNotFound", err)
	}
	if err := s.Set(ctx, "k", "v", 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := s.Get(ctx, "k")
	if err != nil || got != "v" {
		t.Errorf("Get(k) = %q, %v, want \"v\", nil", got, err)
	}
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Delete = %v, want ErrNotFound", err)
	}
}

func TestMemory_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	if err := s.Set(ctx, "k", "v", time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := s.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after expiry = %v, want ErrNotFound", err)
	}
}

func TestMemory_Hash(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	if _, err := s.HashGet(ctx, "h", "f"); !errors.Is(err, ErrNotFound) {
		t.Errorf("HashGet(missing) = %v, want ErrNotFound", err)
	}
	_ = s.HashSet(ctx, "h", "wins", "3")
	_ = s.HashSet(ctx, "h", "losses", "1")
	if v, err := s.HashGet(ctx, "h", "wins"); err != nil || v != "3" {
		t.Errorf("HashGet = %q, %v, want \"3\", nil", v, err)
	}
	all, err := s.HashGetAll(ctx, "h")
	if err != nil {
		t.Fatalf("HashGetAll: %v", err)
	}
	if len(all) != 2 || all["losses"] != "1" {
		t.Errorf("HashGetAll = %v", all)
	}
}

func TestMemory_SortedSetRange(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	_ = s.SortedSetAdd(ctx, "lb", "alice", 300)
	_ = s.SortedSetAdd(ctx, "lb", "bob", 100)
	_ = s.SortedSetAdd(ctx, "lb", "carol", 200)
	// Score update, not a duplicate member.
	_ = s.SortedSetAdd(ctx, "lb", "bob", 400)

	top, err := s.SortedSetRange(ctx, "lb", 0, -1, true)
	if err != nil {
		t.Fatalf("SortedSetRange: %v", err)
	}
	want := []string{"bob", "alice", "carol"}
	if len(top) != len(want) {
		t.Fatalf("range returned %d members, want %d", len(top), len(want))
	}
	for i, m := range top {
		if m.Member != want[i] {
			t.Errorf("rank %d = %q, want %q", i, m.Member, want[i])
		}
	}

	two, _ := s.SortedSetRange(ctx, "lb", 0, 1, true)
	if len(two) != 2 || two[1].Member != "alice" {
		t.Errorf("bounded range = %v", two)
	}
}

func TestRetry_StopsOnNonRetryable(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), 5, time.Millisecond, func() error {
		calls++
		return ErrNotFound
	})
	if !errors.Is(err, ErrNotFound) || calls != 1 {
		t.Errorf("Retry: err=%v calls=%d, want ErrNotFound after 1 call", err, calls)
	}
}

func TestRetry_RetriesUnavailable(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), 4, time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return ErrUnavailable
		}
		return nil
	})
	if err != nil || calls != 3 {
		t.Errorf("Retry: err=%v calls=%d, want nil after 3 calls", err, calls)
	}
}
