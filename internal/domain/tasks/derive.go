package tasks

import (
	"fmt"
	"strings"

	"pet-care-guides/internal/domain/pets"
)

// TaskID deriva el id sintético de una tarea a partir del id de la entrada
// de alimentación o medicación. Determinista: la misma entrada produce
// siempre el mismo task_id, que es lo que referencian los completions.
func TaskID(t Type, entryID string) string {
	return fmt.Sprintf("%s-%s", t, entryID)
}

// FromPet computa las tareas diarias de una mascota. Mascotas fallecidas no
// generan tareas.
func FromPet(p pets.Pet) []Task {
	if p.Status == pets.StatusDeceased {
		return []Task{}
	}

	out := make([]Task, 0, len(p.FeedingSchedule)+len(p.Medications))

	for _, f := range p.FeedingSchedule {
		label := strings.TrimSpace(fmt.Sprintf("Feed %s: %s %s", p.Name, f.Amount, f.Food))
		out = append(out, Task{
			ID:    TaskID(TypeFeeding, f.ID),
			Type:  TypeFeeding,
			PetID: p.ID,
			Label: label,
			Time:  f.Time,
			Notes: f.Notes,
		})
	}

	for _, m := range p.Medications {
		label := strings.TrimSpace(fmt.Sprintf("Give %s: %s %s", p.Name, m.Name, m.Dosage))
		out = append(out, Task{
			ID:    TaskID(TypeMedication, m.ID),
			Type:  TypeMedication,
			PetID: p.ID,
			Label: label,
			Time:  m.TimeOfDay,
			Notes: m.Notes,
		})
	}

	return out
}

// FromPets concatena las tareas de varias mascotas preservando el orden.
func FromPets(ps []pets.Pet) []Task {
	out := make([]Task, 0)
	for _, p := range ps {
		out = append(out, FromPet(p)...)
	}
	return out
}
