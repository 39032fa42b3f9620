package session

import (
	"context"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore[int]()
	ctx := context.Background()

	id := s.NewID()
	if len(id) != 32 {
		t.Errorf("NewID length = %d, want 32 hex chars", len(id))
	}
	if id2 := s.NewID(); id2 == id {
		t.Error("IDs must not repeat")
	}

	if _, ok, _ := s.Get(ctx, id); ok {
		t.Error("unknown ID should miss")
	}
	if err := s.Put(ctx, id, 42); err != nil {
		t.Fatalf("Put: %v", err)
	}
	v, ok, err := s.Get(ctx, id)
	if err != nil || !ok || v != 42 {
		t.Errorf("Get = %v, %v, %v", v, ok, err)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}

	if err := s.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.Get(ctx, id); ok {
		t.Error("deleted ID should miss")
	}
}
