package dataservice

import (
	"context"
	"strings"

	"pet-care-guides/internal/domain/guides"
	"pet-care-guides/internal/domain/pets"
	"pet-care-guides/internal/domain/tasks"
	"pet-care-guides/internal/ports/storage"
)

type CreateGuideInput struct {
	Title  string
	PetIDs []string
	Notes  string

	EmergencyContacts []guides.EmergencyContact
	HomeInfo          guides.HomeInfo
	TravelItinerary   guides.TravelItinerary
	HomeCare          guides.HomeCare
}

type UpdateGuideInput struct {
	Title  *string
	PetIDs *[]string
	Notes  *string

	EmergencyContacts *[]guides.EmergencyContact
	HomeInfo          *guides.HomeInfo
	TravelItinerary   *guides.TravelItinerary
	HomeCare          *guides.HomeCare
}

func (s *Service) CreateGuide(ctx context.Context, userID string, in CreateGuideInput) (guides.Guide, error) {
	userID, err := requireUser(userID)
	if err != nil {
		return guides.Guide{}, err
	}
	if strings.TrimSpace(in.Title) == "" {
		return guides.Guide{}, ErrInvalidInput
	}

	now := s.now()
	g := guides.Guide{
		ID:                s.newID(),
		UserID:            userID,
		Title:             strings.TrimSpace(in.Title),
		PetIDs:            normalizeIDs(in.PetIDs),
		EmergencyContacts: s.stampContactIDs(in.EmergencyContacts),
		HomeInfo:          in.HomeInfo,
		TravelItinerary:   in.TravelItinerary,
		HomeCare:          in.HomeCare,
		Notes:             in.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	all, err := storage.LoadCollection[guides.Guide](ctx, s.store, storage.KeyGuides)
	if err != nil {
		return guides.Guide{}, err
	}
	all = append(all, g)
	if err := storage.SaveCollection(ctx, s.store, storage.KeyGuides, all); err != nil {
		return guides.Guide{}, err
	}
	return g, nil
}

func (s *Service) GetGuides(ctx context.Context, userID string) ([]guides.Guide, error) {
	userID, err := requireUser(userID)
	if err != nil {
		return nil, err
	}

	all, err := storage.LoadCollection[guides.Guide](ctx, s.store, storage.KeyGuides)
	if err != nil {
		return nil, err
	}
	out := make([]guides.Guide, 0)
	for _, g := range all {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (s *Service) GetGuide(ctx context.Context, id string) (guides.Guide, error) {
	all, err := storage.LoadCollection[guides.Guide](ctx, s.store, storage.KeyGuides)
	if err != nil {
		return guides.Guide{}, err
	}
	for _, g := range all {
		if g.ID == id {
			return g, nil
		}
	}
	return guides.Guide{}, ErrNotFound
}

func (s *Service) UpdateGuide(ctx context.Context, id string, in UpdateGuideInput) (guides.Guide, error) {
	all, err := storage.LoadCollection[guides.Guide](ctx, s.store, storage.KeyGuides)
	if err != nil {
		return guides.Guide{}, err
	}

	for i := range all {
		if all[i].ID != id {
			continue
		}
		g := &all[i]
		if in.Title != nil {
			if strings.TrimSpace(*in.Title) == "" {
				return guides.Guide{}, ErrInvalidInput
			}
			g.Title = strings.TrimSpace(*in.Title)
		}
		if in.PetIDs != nil {
			g.PetIDs = normalizeIDs(*in.PetIDs)
		}
		if in.Notes != nil {
			g.Notes = *in.Notes
		}
		if in.EmergencyContacts != nil {
			g.EmergencyContacts = s.stampContactIDs(*in.EmergencyContacts)
		}
		if in.HomeInfo != nil {
			g.HomeInfo = *in.HomeInfo
		}
		if in.TravelItinerary != nil {
			g.TravelItinerary = *in.TravelItinerary
		}
		if in.HomeCare != nil {
			g.HomeCare = *in.HomeCare
		}
		g.UpdatedAt = s.now()

		if err := storage.SaveCollection(ctx, s.store, storage.KeyGuides, all); err != nil {
			return guides.Guide{}, err
		}
		return *g, nil
	}
	return guides.Guide{}, ErrNotFound
}

// DeleteGuide elimina la guía y cascadea a sus dependientes: cheat sheet,
// completions y share links con su guide_id. Es la única escritura
// multi-colección del sistema y NO es transaccional: un crash entre pasos
// deja filas huérfanas. Aceptado: ninguna guía las va a resolver.
func (s *Service) DeleteGuide(ctx context.Context, id string) error {
	all, err := storage.LoadCollection[guides.Guide](ctx, s.store, storage.KeyGuides)
	if err != nil {
		return err
	}

	kept := make([]guides.Guide, 0, len(all))
	found := false
	for _, g := range all {
		if g.ID == id {
			found = true
			continue
		}
		kept = append(kept, g)
	}
	if !found {
		return ErrNotFound
	}
	if err := storage.SaveCollection(ctx, s.store, storage.KeyGuides, kept); err != nil {
		return err
	}

	if err := s.DeleteCheatSheet(ctx, id); err != nil {
		return err
	}
	if err := s.deleteCompletionsByGuide(ctx, id); err != nil {
		return err
	}
	if err := s.links.DeleteByGuide(ctx, id); err != nil {
		return err
	}

	s.log.Info("guide deleted with cascade", "guide_id", id)
	return nil
}

// DuplicateGuide clona todos los campos salvo id y timestamps, con el
// sufijo literal " (Copy)" en el título. Las referencias débiles a
// mascotas se comparten; los nested owned se copian.
func (s *Service) DuplicateGuide(ctx context.Context, id string) (guides.Guide, error) {
	src, err := s.GetGuide(ctx, id)
	if err != nil {
		return guides.Guide{}, err
	}

	now := s.now()
	dup := src
	dup.ID = s.newID()
	dup.Title = src.Title + " (Copy)"
	dup.CreatedAt = now
	dup.UpdatedAt = now
	dup.PetIDs = append([]string(nil), src.PetIDs...)
	dup.EmergencyContacts = append([]guides.EmergencyContact(nil), src.EmergencyContacts...)

	all, err := storage.LoadCollection[guides.Guide](ctx, s.store, storage.KeyGuides)
	if err != nil {
		return guides.Guide{}, err
	}
	all = append(all, dup)
	if err := storage.SaveCollection(ctx, s.store, storage.KeyGuides, all); err != nil {
		return guides.Guide{}, err
	}
	return dup, nil
}

// GetGuidePets resuelve las referencias débiles de la guía. Ids que no
// resuelven se omiten en silencio: mascota borrada != guía rota.
func (s *Service) GetGuidePets(ctx context.Context, guideID string) ([]pets.Pet, error) {
	g, err := s.GetGuide(ctx, guideID)
	if err != nil {
		return nil, err
	}

	all, err := storage.LoadCollection[pets.Pet](ctx, s.store, storage.KeyPets)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]pets.Pet, len(all))
	for _, p := range all {
		byID[p.ID] = p
	}

	out := make([]pets.Pet, 0, len(g.PetIDs))
	for _, pid := range g.PetIDs {
		if p, ok := byID[pid]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetGuideTasks computa las tareas diarias de la guía desde sus mascotas.
// Nada se persiste; los completions referencian estos ids sintéticos.
func (s *Service) GetGuideTasks(ctx context.Context, guideID string) ([]tasks.Task, error) {
	ps, err := s.GetGuidePets(ctx, guideID)
	if err != nil {
		return nil, err
	}
	return tasks.FromPets(ps), nil
}

func (s *Service) stampContactIDs(contacts []guides.EmergencyContact) []guides.EmergencyContact {
	out := make([]guides.EmergencyContact, len(contacts))
	for i, c := range contacts {
		if c.ID == "" {
			c.ID = s.newID()
		}
		out[i] = c
	}
	return out
}

func normalizeIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}
