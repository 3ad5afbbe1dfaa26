package dataservice

import (
	"context"
	"strings"

	"pet-care-guides/internal/domain/pets"
	"pet-care-guides/internal/platform/identity"
	"pet-care-guides/internal/ports/storage"
)

type CreatePetInput struct {
	Name    string
	Species pets.Species
	Breed   string
	Notes   string

	FeedingSchedule []pets.FeedingEntry
	Medications     []pets.Medication
	HealthProtocol  []pets.ProtocolItem
}

// UpdatePetInput es un partial update: campo nil == no tocar. Los slices
// van como puntero-a-slice para distinguir "no especificado" de "vaciar".
type UpdatePetInput struct {
	Name    *string
	Species *pets.Species
	Breed   *string
	Notes   *string

	FeedingSchedule *[]pets.FeedingEntry
	Medications     *[]pets.Medication
	HealthProtocol  *[]pets.ProtocolItem
}

func (s *Service) CreatePet(ctx context.Context, userID string, in CreatePetInput) (pets.Pet, error) {
	userID, err := requireUser(userID)
	if err != nil {
		return pets.Pet{}, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return pets.Pet{}, ErrInvalidInput
	}

	now := s.now()
	p := pets.Pet{
		ID:              s.newID(),
		UserID:          userID,
		Name:            strings.TrimSpace(in.Name),
		Species:         in.Species,
		Breed:           strings.TrimSpace(in.Breed),
		Status:          pets.StatusActive,
		FeedingSchedule: s.stampFeedingIDs(in.FeedingSchedule),
		Medications:     s.stampMedicationIDs(in.Medications),
		HealthProtocol:  in.HealthProtocol,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	all, err := storage.LoadCollection[pets.Pet](ctx, s.store, storage.KeyPets)
	if err != nil {
		return pets.Pet{}, err
	}
	all = append(all, p)
	if err := storage.SaveCollection(ctx, s.store, storage.KeyPets, all); err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}

func (s *Service) GetPets(ctx context.Context, userID string) ([]pets.Pet, error) {
	userID, err := requireUser(userID)
	if err != nil {
		return nil, err
	}

	all, err := storage.LoadCollection[pets.Pet](ctx, s.store, storage.KeyPets)
	if err != nil {
		return nil, err
	}
	out := make([]pets.Pet, 0)
	for _, p := range all {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Service) GetPet(ctx context.Context, id string) (pets.Pet, error) {
	all, err := storage.LoadCollection[pets.Pet](ctx, s.store, storage.KeyPets)
	if err != nil {
		return pets.Pet{}, err
	}
	for _, p := range all {
		if p.ID == id {
			return p, nil
		}
	}
	return pets.Pet{}, ErrNotFound
}

// UpdatePet mergea el partial campo a campo sobre la fila existente; los
// campos no especificados quedan intactos y updated_at sube.
func (s *Service) UpdatePet(ctx context.Context, id string, in UpdatePetInput) (pets.Pet, error) {
	return s.mutatePet(ctx, id, func(p *pets.Pet) error {
		if in.Name != nil {
			if strings.TrimSpace(*in.Name) == "" {
				return ErrInvalidInput
			}
			p.Name = strings.TrimSpace(*in.Name)
		}
		if in.Species != nil {
			p.Species = *in.Species
		}
		if in.Breed != nil {
			p.Breed = strings.TrimSpace(*in.Breed)
		}
		if in.Notes != nil {
			p.Notes = *in.Notes
		}
		if in.FeedingSchedule != nil {
			p.FeedingSchedule = s.stampFeedingIDs(*in.FeedingSchedule)
		}
		if in.Medications != nil {
			p.Medications = s.stampMedicationIDs(*in.Medications)
		}
		if in.HealthProtocol != nil {
			p.HealthProtocol = *in.HealthProtocol
		}
		return nil
	})
}

// DeletePet NO cascadea: las guías referencian mascotas débilmente y deben
// renderizar la ausencia, no fallar.
func (s *Service) DeletePet(ctx context.Context, id string) error {
	all, err := storage.LoadCollection[pets.Pet](ctx, s.store, storage.KeyPets)
	if err != nil {
		return err
	}

	kept := make([]pets.Pet, 0, len(all))
	found := false
	for _, p := range all {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return ErrNotFound
	}
	return storage.SaveCollection(ctx, s.store, storage.KeyPets, kept)
}

func (s *Service) MarkPetDeceased(ctx context.Context, id, date string) (pets.Pet, error) {
	if _, err := identity.ParseDate(date); err != nil {
		return pets.Pet{}, ErrInvalidInput
	}
	return s.mutatePet(ctx, id, func(p *pets.Pet) error {
		p.Status = pets.StatusDeceased
		p.DeceasedDate = date
		return nil
	})
}

// RestorePet vuelve la mascota a activa y limpia deceased_date (el campo
// existe si y solo si status == deceased).
func (s *Service) RestorePet(ctx context.Context, id string) (pets.Pet, error) {
	return s.mutatePet(ctx, id, func(p *pets.Pet) error {
		p.Status = pets.StatusActive
		p.DeceasedDate = ""
		return nil
	})
}

func (s *Service) mutatePet(ctx context.Context, id string, mutate func(*pets.Pet) error) (pets.Pet, error) {
	all, err := storage.LoadCollection[pets.Pet](ctx, s.store, storage.KeyPets)
	if err != nil {
		return pets.Pet{}, err
	}

	for i := range all {
		if all[i].ID != id {
			continue
		}
		if err := mutate(&all[i]); err != nil {
			return pets.Pet{}, err
		}
		all[i].UpdatedAt = s.now()
		if err := storage.SaveCollection(ctx, s.store, storage.KeyPets, all); err != nil {
			return pets.Pet{}, err
		}
		return all[i], nil
	}
	return pets.Pet{}, ErrNotFound
}

// stampFeedingIDs asigna id generado a las entradas nuevas; las que ya
// traen id lo conservan (sus task_id derivados deben seguir estables).
func (s *Service) stampFeedingIDs(entries []pets.FeedingEntry) []pets.FeedingEntry {
	out := make([]pets.FeedingEntry, len(entries))
	for i, e := range entries {
		if e.ID == "" {
			e.ID = s.newID()
		}
		out[i] = e
	}
	return out
}

func (s *Service) stampMedicationIDs(meds []pets.Medication) []pets.Medication {
	out := make([]pets.Medication, len(meds))
	for i, m := range meds {
		if m.ID == "" {
			m.ID = s.newID()
		}
		out[i] = m
	}
	return out
}
