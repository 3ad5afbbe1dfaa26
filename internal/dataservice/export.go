package dataservice

import (
	"context"
	"time"

	"pet-care-guides/internal/domain/cheatsheets"
	"pet-care-guides/internal/domain/guides"
	"pet-care-guides/internal/domain/pets"
	"pet-care-guides/internal/domain/settings"
	"pet-care-guides/internal/domain/sharelinks"
	"pet-care-guides/internal/domain/tasks"
	"pet-care-guides/internal/ports/storage"
)

// ExportVersion versiona el sobre exportado; hoy no hay gate de versión al
// importar, el campo existe para poder migrar formatos a futuro.
const ExportVersion = "1.0"

// ExportedData es el sobre JSON de un usuario. Excluye share links y cheat
// sheets deliberadamente: son efímeros/derivables, no datos durables que
// valga la pena round-trippear.
type ExportedData struct {
	Version    string    `json:"version"`
	ExportedAt time.Time `json:"exported_at"`

	Pets            []pets.Pet             `json:"pets"`
	Guides          []guides.Guide         `json:"guides"`
	TaskCompletions []tasks.TaskCompletion `json:"task_completions"`
	Settings        settings.AppSettings   `json:"settings"`
}

// ExportAllData toma el snapshot del usuario: sus mascotas, guías, settings
// y solo los completions cuyo guide_id pertenece a una de sus guías (join
// por filtro, no relación almacenada).
func (s *Service) ExportAllData(ctx context.Context, userID string) (ExportedData, error) {
	userID, err := requireUser(userID)
	if err != nil {
		return ExportedData{}, err
	}

	userPets, err := s.GetPets(ctx, userID)
	if err != nil {
		return ExportedData{}, err
	}
	userGuides, err := s.GetGuides(ctx, userID)
	if err != nil {
		return ExportedData{}, err
	}

	ownedGuides := make(map[string]struct{}, len(userGuides))
	for _, g := range userGuides {
		ownedGuides[g.ID] = struct{}{}
	}

	allCompletions, err := storage.LoadCollection[tasks.TaskCompletion](ctx, s.store, storage.KeyTaskCompletions)
	if err != nil {
		return ExportedData{}, err
	}
	completions := make([]tasks.TaskCompletion, 0)
	for _, c := range allCompletions {
		if _, ok := ownedGuides[c.GuideID]; ok {
			completions = append(completions, c)
		}
	}

	st, err := s.GetSettings(ctx, userID)
	if err != nil {
		return ExportedData{}, err
	}

	return ExportedData{
		Version:         ExportVersion,
		ExportedAt:      s.now(),
		Pets:            userPets,
		Guides:          userGuides,
		TaskCompletions: completions,
		Settings:        st,
	}, nil
}

// ImportData reemplaza wholesale las mascotas, guías, completions y
// settings del usuario con el set importado, re-estampando user_id en cada
// fila. Las filas de otros usuarios en las colecciones compartidas quedan
// intactas. No es seguro correrlo concurrente con otra sesión del mismo
// usuario (filter-then-replace sobre la colección completa).
func (s *Service) ImportData(ctx context.Context, userID string, data ExportedData) error {
	userID, err := requireUser(userID)
	if err != nil {
		return err
	}

	// guías actuales del usuario: definen qué completions son suyos hoy
	allGuides, err := storage.LoadCollection[guides.Guide](ctx, s.store, storage.KeyGuides)
	if err != nil {
		return err
	}
	oldOwned := make(map[string]struct{})
	keptGuides := make([]guides.Guide, 0, len(allGuides))
	for _, g := range allGuides {
		if g.UserID == userID {
			oldOwned[g.ID] = struct{}{}
			continue
		}
		keptGuides = append(keptGuides, g)
	}
	for _, g := range data.Guides {
		g.UserID = userID
		keptGuides = append(keptGuides, g)
	}

	allPets, err := storage.LoadCollection[pets.Pet](ctx, s.store, storage.KeyPets)
	if err != nil {
		return err
	}
	keptPets := make([]pets.Pet, 0, len(allPets))
	for _, p := range allPets {
		if p.UserID != userID {
			keptPets = append(keptPets, p)
		}
	}
	for _, p := range data.Pets {
		p.UserID = userID
		keptPets = append(keptPets, p)
	}

	allCompletions, err := storage.LoadCollection[tasks.TaskCompletion](ctx, s.store, storage.KeyTaskCompletions)
	if err != nil {
		return err
	}
	keptCompletions := make([]tasks.TaskCompletion, 0, len(allCompletions))
	for _, c := range allCompletions {
		if _, mine := oldOwned[c.GuideID]; !mine {
			keptCompletions = append(keptCompletions, c)
		}
	}
	keptCompletions = append(keptCompletions, data.TaskCompletions...)

	if err := storage.SaveCollection(ctx, s.store, storage.KeyPets, keptPets); err != nil {
		return err
	}
	if err := storage.SaveCollection(ctx, s.store, storage.KeyGuides, keptGuides); err != nil {
		return err
	}
	if err := storage.SaveCollection(ctx, s.store, storage.KeyTaskCompletions, keptCompletions); err != nil {
		return err
	}

	st := data.Settings
	st.UserID = userID
	if err := storage.SaveOne(ctx, s.store, storage.SettingsKey(userID), st); err != nil {
		return err
	}

	s.log.Info("import finished", "user_id", userID,
		"pets", len(data.Pets), "guides", len(data.Guides))
	return nil
}

// ClearAllData elimina toda fila cuya pertenencia (user_id directo, o
// guide_id de una guía del usuario) trace a este usuario, en las seis
// colecciones. Secuencial y sin rollback, igual que el cascade de guías.
func (s *Service) ClearAllData(ctx context.Context, userID string) error {
	userID, err := requireUser(userID)
	if err != nil {
		return err
	}

	allGuides, err := storage.LoadCollection[guides.Guide](ctx, s.store, storage.KeyGuides)
	if err != nil {
		return err
	}
	owned := make(map[string]struct{})
	keptGuides := make([]guides.Guide, 0, len(allGuides))
	for _, g := range allGuides {
		if g.UserID == userID {
			owned[g.ID] = struct{}{}
			continue
		}
		keptGuides = append(keptGuides, g)
	}

	allPets, err := storage.LoadCollection[pets.Pet](ctx, s.store, storage.KeyPets)
	if err != nil {
		return err
	}
	keptPets := make([]pets.Pet, 0, len(allPets))
	for _, p := range allPets {
		if p.UserID != userID {
			keptPets = append(keptPets, p)
		}
	}

	allCompletions, err := storage.LoadCollection[tasks.TaskCompletion](ctx, s.store, storage.KeyTaskCompletions)
	if err != nil {
		return err
	}
	keptCompletions := make([]tasks.TaskCompletion, 0, len(allCompletions))
	for _, c := range allCompletions {
		if _, mine := owned[c.GuideID]; !mine {
			keptCompletions = append(keptCompletions, c)
		}
	}

	allLinks, err := storage.LoadCollection[sharelinks.ShareableLink](ctx, s.store, storage.KeyShareLinks)
	if err != nil {
		return err
	}
	keptLinks := make([]sharelinks.ShareableLink, 0, len(allLinks))
	for _, l := range allLinks {
		_, mine := owned[l.GuideID]
		if l.UserID == userID || mine {
			continue
		}
		keptLinks = append(keptLinks, l)
	}

	allSheets, err := storage.LoadCollection[cheatsheets.CheatSheet](ctx, s.store, storage.KeyCheatSheets)
	if err != nil {
		return err
	}
	keptSheets := make([]cheatsheets.CheatSheet, 0, len(allSheets))
	for _, c := range allSheets {
		if _, mine := owned[c.GuideID]; !mine {
			keptSheets = append(keptSheets, c)
		}
	}

	if err := storage.SaveCollection(ctx, s.store, storage.KeyPets, keptPets); err != nil {
		return err
	}
	if err := storage.SaveCollection(ctx, s.store, storage.KeyGuides, keptGuides); err != nil {
		return err
	}
	if err := storage.SaveCollection(ctx, s.store, storage.KeyTaskCompletions, keptCompletions); err != nil {
		return err
	}
	if err := storage.SaveCollection(ctx, s.store, storage.KeyShareLinks, keptLinks); err != nil {
		return err
	}
	if err := storage.SaveCollection(ctx, s.store, storage.KeyCheatSheets, keptSheets); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, storage.SettingsKey(userID)); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, storage.OnboardingKey(userID)); err != nil {
		return err
	}

	s.log.Info("all data cleared", "user_id", userID)
	return nil
}
