package dataservice

import (
	"context"
	"testing"

	"pet-care-guides/internal/domain/tasks"
)

// seedUser arma mascotas, guía, completion, link y cheat sheet para un
// usuario; devuelve el id de la guía.
func seedUser(t *testing.T, svc *Service, userID string) string {
	t.Helper()
	ctx := context.Background()

	p, err := svc.CreatePet(ctx, userID, CreatePetInput{Name: "Luna-" + userID})
	if err != nil {
		t.Fatalf("CreatePet error: %v", err)
	}
	g, err := svc.CreateGuide(ctx, userID, CreateGuideInput{Title: "Guide-" + userID, PetIDs: []string{p.ID}})
	if err != nil {
		t.Fatalf("CreateGuide error: %v", err)
	}
	if _, err := svc.MarkTaskComplete(ctx, tasks.TaskCompletion{
		GuideID: g.ID, TaskID: "t-" + userID, Date: "2025-01-01",
	}); err != nil {
		t.Fatalf("MarkTaskComplete error: %v", err)
	}
	if _, err := svc.CreateShareLink(ctx, g.ID, userID, nil); err != nil {
		t.Fatalf("CreateShareLink error: %v", err)
	}
	if _, err := svc.SaveCheatSheet(ctx, g.ID, "sheet", "model"); err != nil {
		t.Fatalf("SaveCheatSheet error: %v", err)
	}
	return g.ID
}

func TestExportAllData_ScopedToUser(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	seedUser(t, svc, "a")
	seedUser(t, svc, "c")

	out, err := svc.ExportAllData(ctx, "a")
	if err != nil {
		t.Fatalf("ExportAllData error: %v", err)
	}

	if out.Version != ExportVersion {
		t.Fatalf("expected version %q, got %q", ExportVersion, out.Version)
	}
	if len(out.Pets) != 1 || out.Pets[0].UserID != "a" {
		t.Fatalf("expected only a's pets: %#v", out.Pets)
	}
	if len(out.Guides) != 1 || out.Guides[0].UserID != "a" {
		t.Fatalf("expected only a's guides: %#v", out.Guides)
	}
	// join por filtro: solo completions cuyo guide_id es de a
	if len(out.TaskCompletions) != 1 || out.TaskCompletions[0].TaskID != "t-a" {
		t.Fatalf("expected only a's completions: %#v", out.TaskCompletions)
	}
	if out.Settings.UserID != "a" {
		t.Fatalf("expected a's settings, got %#v", out.Settings)
	}
}

func TestImportData_RestampsAndLeavesOthersIntact(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	seedUser(t, svc, "a")
	bOldGuide := seedUser(t, svc, "b")
	seedUser(t, svc, "c")

	exported, err := svc.ExportAllData(ctx, "a")
	if err != nil {
		t.Fatalf("ExportAllData error: %v", err)
	}

	if err := svc.ImportData(ctx, "b", exported); err != nil {
		t.Fatalf("ImportData error: %v", err)
	}

	// todo lo importado queda re-estampado a b
	bPets, _ := svc.GetPets(ctx, "b")
	if len(bPets) != 1 || bPets[0].Name != "Luna-a" {
		t.Fatalf("expected b to own the imported pet: %#v", bPets)
	}
	bGuides, _ := svc.GetGuides(ctx, "b")
	if len(bGuides) != 1 || bGuides[0].Title != "Guide-a" {
		t.Fatalf("expected b's guides replaced wholesale: %#v", bGuides)
	}
	// los completions viejos de b se fueron; los importados (t-a) están.
	// Nota: a conserva su propia copia bajo el mismo guide_id, así que
	// la consulta puede ver ambas filas.
	got, _ := svc.GetTaskCompletions(ctx, bGuides[0].ID, "2025-01-01")
	if len(got) == 0 {
		t.Fatalf("expected imported completions under b")
	}
	for _, c := range got {
		if c.TaskID != "t-a" {
			t.Fatalf("b's old completions must be replaced, found %q", c.TaskID)
		}
	}
	if old, _ := svc.GetTaskCompletions(ctx, bOldGuide, "2025-01-01"); len(old) != 0 {
		t.Fatalf("b's old completions must be gone: %#v", old)
	}

	// a y c no se tocan
	aPets, _ := svc.GetPets(ctx, "a")
	if len(aPets) != 1 || aPets[0].Name != "Luna-a" {
		t.Fatalf("a's rows must be untouched: %#v", aPets)
	}
	cGuides, _ := svc.GetGuides(ctx, "c")
	if len(cGuides) != 1 || cGuides[0].Title != "Guide-c" {
		t.Fatalf("c's rows must be untouched: %#v", cGuides)
	}
}

func TestClearAllData_RemovesEverythingTraceableToUser(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	aGuide := seedUser(t, svc, "a")
	seedUser(t, svc, "c")
	_, _ = svc.AdvanceOnboarding(ctx, "a", "add_pet", OnboardingPatch{})

	if err := svc.ClearAllData(ctx, "a"); err != nil {
		t.Fatalf("ClearAllData error: %v", err)
	}

	if ps, _ := svc.GetPets(ctx, "a"); len(ps) != 0 {
		t.Fatalf("expected a's pets cleared: %#v", ps)
	}
	if gs, _ := svc.GetGuides(ctx, "a"); len(gs) != 0 {
		t.Fatalf("expected a's guides cleared: %#v", gs)
	}
	if cs, _ := svc.GetTaskCompletions(ctx, aGuide, "2025-01-01"); len(cs) != 0 {
		t.Fatalf("expected a's completions cleared: %#v", cs)
	}
	if ls, _ := svc.GetShareLinks(ctx, "a"); len(ls) != 0 {
		t.Fatalf("expected a's links cleared: %#v", ls)
	}
	if sheet, _ := svc.GetCheatSheet(ctx, aGuide); sheet != nil {
		t.Fatalf("expected a's cheat sheet cleared")
	}
	if st, _ := svc.GetOnboardingState(ctx, "a"); st != nil {
		t.Fatalf("expected a's onboarding cleared")
	}
	// settings vuelven a defaults (la fila persistida se borró)
	se, _ := svc.GetSettings(ctx, "a")
	if !se.AutoSaveEnabled || se.OnboardingCompleted {
		t.Fatalf("expected default settings after clear: %#v", se)
	}

	// c queda intacto en las seis colecciones
	if gs, _ := svc.GetGuides(ctx, "c"); len(gs) != 1 {
		t.Fatalf("c's guides must survive: %#v", gs)
	}
	if ps, _ := svc.GetPets(ctx, "c"); len(ps) != 1 {
		t.Fatalf("c's pets must survive: %#v", ps)
	}
	if ls, _ := svc.GetShareLinks(ctx, "c"); len(ls) != 1 {
		t.Fatalf("c's links must survive: %#v", ls)
	}
}
