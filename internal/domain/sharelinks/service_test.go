package sharelinks

import (
	"context"
	"strings"
	"testing"
	"time"

	"pet-care-guides/internal/adapters/storage/memory"
	"pet-care-guides/internal/platform/logger"
)

func newTestService(now time.Time) *Service {
	svc := NewService(memory.NewStore(), logger.Nop())
	svc.now = func() time.Time { return now }
	return svc
}

func TestCreate_CodeShape(t *testing.T) {
	svc := newTestService(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	link, err := svc.Create(context.Background(), "g1", "u1", nil)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if len(link.Code) != CodeLength {
		t.Fatalf("expected %d-char code, got %q", CodeLength, link.Code)
	}
	for _, r := range link.Code {
		if !strings.ContainsRune(codeAlphabet, r) {
			t.Fatalf("code %q contains rune outside the alphabet", link.Code)
		}
	}
	if strings.ContainsAny(link.Code, "0O1lI") {
		t.Fatalf("code %q contains ambiguous glyph", link.Code)
	}
	if !link.IsActive || link.ViewCount != 0 || link.ExpiresAt != nil {
		t.Fatalf("unexpected new link state: %#v", link)
	}
}

func TestCreate_DeactivatesOtherLinksOfGuide(t *testing.T) {
	svc := newTestService(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	first, err := svc.Create(ctx, "g1", "u1", nil)
	if err != nil {
		t.Fatalf("Create #1 error: %v", err)
	}
	other, err := svc.Create(ctx, "g2", "u1", nil)
	if err != nil {
		t.Fatalf("Create other-guide error: %v", err)
	}
	second, err := svc.Create(ctx, "g1", "u1", nil)
	if err != nil {
		t.Fatalf("Create #2 error: %v", err)
	}

	all, err := svc.ListByGuide(ctx, "g1")
	if err != nil {
		t.Fatalf("ListByGuide error: %v", err)
	}
	active := 0
	for _, l := range all {
		if l.IsActive {
			active++
			if l.ID != second.ID {
				t.Fatalf("expected only the newest link active")
			}
		}
		if l.ID == first.ID && l.IsActive {
			t.Fatalf("first link should have been deactivated")
		}
	}
	if active != 1 {
		t.Fatalf("expected exactly 1 active link for g1, got %d", active)
	}

	// el link de la otra guía no se toca
	gl, _ := svc.GetByCode(ctx, other.Code)
	if gl == nil || !gl.IsActive {
		t.Fatalf("other guide's link must stay active")
	}
}

func TestGetByCode_LazyExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(now)
	ctx := context.Background()

	days := 7
	link, err := svc.Create(ctx, "g1", "u1", &days)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if link.ExpiresAt == nil || !link.ExpiresAt.Equal(now.Add(7*24*time.Hour)) {
		t.Fatalf("unexpected expires_at: %v", link.ExpiresAt)
	}

	got, err := svc.GetByCode(ctx, link.Code)
	if err != nil || got == nil {
		t.Fatalf("expected valid link before expiry, got %v err=%v", got, err)
	}

	// sin sweep de fondo: el mismo registro deja de resolver cuando el
	// reloj pasa expires_at
	svc.now = func() time.Time { return now.Add(8 * 24 * time.Hour) }
	got, err = svc.GetByCode(ctx, link.Code)
	if err != nil {
		t.Fatalf("GetByCode error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for expired code")
	}
}

func TestGetByCode_UnknownAndInactive(t *testing.T) {
	svc := newTestService(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	got, err := svc.GetByCode(ctx, "zzzzzzzz")
	if err != nil || got != nil {
		t.Fatalf("unknown code: expected nil,nil; got %v err=%v", got, err)
	}

	link, _ := svc.Create(ctx, "g1", "u1", nil)
	if err := svc.Deactivate(ctx, link.ID); err != nil {
		t.Fatalf("Deactivate error: %v", err)
	}
	got, err = svc.GetByCode(ctx, link.Code)
	if err != nil || got != nil {
		t.Fatalf("inactive code: expected nil,nil; got %v err=%v", got, err)
	}
}

func TestDeactivate_Idempotent(t *testing.T) {
	svc := newTestService(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	link, _ := svc.Create(ctx, "g1", "u1", nil)
	if err := svc.Deactivate(ctx, link.ID); err != nil {
		t.Fatalf("Deactivate error: %v", err)
	}
	if err := svc.Deactivate(ctx, link.ID); err != nil {
		t.Fatalf("second Deactivate must be a no-op, got %v", err)
	}
	if err := svc.Deactivate(ctx, "no-such-id"); err != nil {
		t.Fatalf("deactivating unknown id must be a no-op, got %v", err)
	}
}

func TestRecordView_Increments(t *testing.T) {
	svc := newTestService(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	link, _ := svc.Create(ctx, "g1", "u1", nil)
	for i := 0; i < 3; i++ {
		if err := svc.RecordView(ctx, link.ID); err != nil {
			t.Fatalf("RecordView error: %v", err)
		}
	}

	got, _ := svc.GetByCode(ctx, link.Code)
	if got == nil || got.ViewCount != 3 {
		t.Fatalf("expected view_count 3, got %#v", got)
	}
}

func TestDeleteByGuide_RemovesAll(t *testing.T) {
	svc := newTestService(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	_, _ = svc.Create(ctx, "g1", "u1", nil)
	_, _ = svc.Create(ctx, "g1", "u1", nil)
	keep, _ := svc.Create(ctx, "g2", "u1", nil)

	if err := svc.DeleteByGuide(ctx, "g1"); err != nil {
		t.Fatalf("DeleteByGuide error: %v", err)
	}

	rest, _ := svc.ListByUser(ctx, "u1")
	if len(rest) != 1 || rest[0].ID != keep.ID {
		t.Fatalf("expected only g2's link to survive, got %#v", rest)
	}
}
