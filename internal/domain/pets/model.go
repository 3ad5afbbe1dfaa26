package pets

import "time"

// Species define las especies soportadas.
type Species string

const (
	SpeciesDog   Species = "dog"
	SpeciesCat   Species = "cat"
	SpeciesBird  Species = "bird"
	SpeciesOther Species = "other"
)

// Status define el ciclo de vida de la mascota.
type Status string

const (
	StatusActive   Status = "active"
	StatusDeceased Status = "deceased"
)

// FeedingEntry es una entrada del horario de alimentación. Su ID generado
// es la base del task_id sintético de las tareas diarias derivadas.
type FeedingEntry struct {
	ID     string `json:"id"`
	Time   string `json:"time"` // HH:MM local
	Food   string `json:"food"`
	Amount string `json:"amount"`
	Notes  string `json:"notes,omitempty"`
}

// Medication es una medicación recurrente; igual que FeedingEntry, su ID
// alimenta el task_id derivado.
type Medication struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	TimeOfDay string `json:"time_of_day,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// ProtocolItem es un toggle de síntoma dentro del protocolo de salud.
type ProtocolItem struct {
	Symptom      string `json:"symptom"`
	Enabled      bool   `json:"enabled"`
	Instructions string `json:"instructions,omitempty"`
}

// Pet es el perfil de una mascota. Pertenece exclusivamente a su usuario;
// las guías la referencian por id sin ownership (weak reference).
type Pet struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	Name    string  `json:"name"`
	Species Species `json:"species"`
	Breed   string  `json:"breed,omitempty"`

	Status Status `json:"status"`
	// DeceasedDate se setea si y solo si Status == deceased (YYYY-MM-DD).
	DeceasedDate string `json:"deceased_date,omitempty"`

	FeedingSchedule []FeedingEntry `json:"feeding_schedule"`
	Medications     []Medication   `json:"medications"`
	HealthProtocol  []ProtocolItem `json:"health_protocol,omitempty"`

	Notes string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
