package storage_test

import (
	"context"
	"testing"

	"pet-care-guides/internal/adapters/storage/memory"
	"pet-care-guides/internal/ports/storage"
)

type row struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestLoadCollection_AbsentKey_ReturnsEmpty(t *testing.T) {
	store := memory.NewStore()

	items, err := storage.LoadCollection[row](context.Background(), store, "missing")
	if err != nil {
		t.Fatalf("LoadCollection error: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", items)
	}
}

func TestLoadCollection_CorruptBlob_DegradesToEmpty(t *testing.T) {
	// blob corrupto == "la colección todavía no existe": disponibilidad
	// por encima de los datos perdidos
	store := memory.NewStore()
	if err := store.Save(context.Background(), storage.KeyPets, []byte("{not json")); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	items, err := storage.LoadCollection[row](context.Background(), store, storage.KeyPets)
	if err != nil {
		t.Fatalf("expected degraded empty collection, got error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty collection, got %#v", items)
	}
}

func TestSaveLoadCollection_RoundTrip(t *testing.T) {
	store := memory.NewStore()
	in := []row{{ID: "a", Name: "Luna"}, {ID: "b", Name: "Max"}}

	if err := storage.SaveCollection(context.Background(), store, storage.KeyPets, in); err != nil {
		t.Fatalf("SaveCollection error: %v", err)
	}
	out, err := storage.LoadCollection[row](context.Background(), store, storage.KeyPets)
	if err != nil {
		t.Fatalf("LoadCollection error: %v", err)
	}
	if len(out) != 2 || out[0] != in[0] || out[1] != in[1] {
		t.Fatalf("round trip mismatch: %#v", out)
	}
}

func TestLoadOne_AbsentAndCorrupt(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	_, ok, err := storage.LoadOne[row](ctx, store, storage.SettingsKey("u1"))
	if err != nil || ok {
		t.Fatalf("expected absent, got ok=%v err=%v", ok, err)
	}

	if err := store.Save(ctx, storage.SettingsKey("u1"), []byte("][")); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	_, ok, err = storage.LoadOne[row](ctx, store, storage.SettingsKey("u1"))
	if err != nil || ok {
		t.Fatalf("corrupt object should read as absent, got ok=%v err=%v", ok, err)
	}
}

func TestPerUserKeys(t *testing.T) {
	if storage.SettingsKey("u1") == storage.SettingsKey("u2") {
		t.Fatalf("settings keys must be per user")
	}
	if storage.OnboardingKey("u1") == storage.SettingsKey("u1") {
		t.Fatalf("onboarding and settings keys must not collide")
	}
}
