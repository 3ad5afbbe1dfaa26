package memory

import (
	"context"
	"testing"
)

func TestStore_LoadSaveDelete(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	if _, ok, _ := s.Load(ctx, "k"); ok {
		t.Fatalf("expected key absent")
	}

	if err := s.Save(ctx, "k", []byte("v1")); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	payload, ok, err := s.Load(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if string(payload) != "v1" {
		t.Fatalf("expected v1, got %q", payload)
	}

	// reemplazo completo
	if err := s.Save(ctx, "k", []byte("v2")); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	payload, _, _ = s.Load(ctx, "k")
	if string(payload) != "v2" {
		t.Fatalf("expected v2, got %q", payload)
	}

	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, ok, _ := s.Load(ctx, "k"); ok {
		t.Fatalf("expected key deleted")
	}
	// delete idempotente
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("second Delete error: %v", err)
	}
}

func TestStore_LoadReturnsCopy(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_ = s.Save(ctx, "k", []byte("abc"))
	payload, _, _ := s.Load(ctx, "k")
	payload[0] = 'X'

	again, _, _ := s.Load(ctx, "k")
	if string(again) != "abc" {
		t.Fatalf("caller mutation leaked into store: %q", again)
	}
}
