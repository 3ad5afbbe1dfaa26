package guides

import "time"

// EmergencyContact pertenece a la guía y se elimina con ella.
type EmergencyContact struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Role  string `json:"role,omitempty"` // vet, neighbor, owner...
}

type HomeInfo struct {
	Address      string `json:"address,omitempty"`
	WifiName     string `json:"wifi_name,omitempty"`
	WifiPassword string `json:"wifi_password,omitempty"`
	AccessNotes  string `json:"access_notes,omitempty"`
	ParkingNotes string `json:"parking_notes,omitempty"`
}

type TravelItinerary struct {
	Destination   string `json:"destination,omitempty"`
	DepartureDate string `json:"departure_date,omitempty"` // YYYY-MM-DD
	ReturnDate    string `json:"return_date,omitempty"`
	ContactInfo   string `json:"contact_info,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type HomeCare struct {
	PlantCare     string `json:"plant_care,omitempty"`
	MailPickup    string `json:"mail_pickup,omitempty"`
	TrashSchedule string `json:"trash_schedule,omitempty"`
	OtherNotes    string `json:"other_notes,omitempty"`
}

// Guide es una guía de cuidado para pet-sitters. PetIDs es una lista de
// referencias débiles: membresía, no ownership. Borrar una mascota no borra
// la guía, y una guía que apunta a una mascota inexistente debe renderizar
// esa mascota como ausente, nunca fallar. Todo lo demás (contactos, info de
// casa, itinerario, cuidado del hogar) es owned y se reemplaza/borra como
// unidad junto con la guía.
type Guide struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	Title  string   `json:"title"`
	PetIDs []string `json:"pet_ids"`

	EmergencyContacts []EmergencyContact `json:"emergency_contacts"`
	HomeInfo          HomeInfo           `json:"home_info"`
	TravelItinerary   TravelItinerary    `json:"travel_itinerary"`
	HomeCare          HomeCare           `json:"home_care"`

	Notes string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
