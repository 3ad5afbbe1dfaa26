package tasks

import "time"

// TaskCompletion NO es una tarea: es el registro de que una tarea derivada
// se completó en una fecha. Clave compuesta (task_id, date), única: a lo
// sumo una fila por clave. Pertenece a la guía de GuideID.
type TaskCompletion struct {
	ID      string `json:"id"`
	GuideID string `json:"guide_id"`

	TaskID string `json:"task_id"`
	Date   string `json:"date"` // YYYY-MM-DD

	CompletedBy string    `json:"completed_by,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CompletedAt time.Time `json:"completed_at"`
}

// Type clasifica las tareas derivadas.
type Type string

const (
	TypeFeeding    Type = "feeding"
	TypeMedication Type = "medication"
)

// Task es una tarea diaria computada on-demand desde los datos de la
// mascota. Nunca se persiste; solo sus completions.
type Task struct {
	ID    string `json:"id"` // sintético, determinista (ver TaskID)
	Type  Type   `json:"type"`
	PetID string `json:"pet_id"`

	Label string `json:"label"`
	Time  string `json:"time,omitempty"` // HH:MM si aplica
	Notes string `json:"notes,omitempty"`
}
