package sharelinks

import "time"

// ShareableLink publica una guía bajo un código corto. Máquina de estados
// por link: Active → Inactive, terminal; se llega por desactivación
// explícita o implícitamente al crear un link nuevo para la misma guía.
// No existe transición Inactive → Active.
type ShareableLink struct {
	ID      string `json:"id"`
	GuideID string `json:"guide_id"`
	UserID  string `json:"user_id"`

	Code string `json:"code"`

	// ExpiresAt nil == no expira nunca. La expiración se evalúa lazy al
	// leer; no hay sweep de fondo.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	IsActive  bool      `json:"is_active"`
	ViewCount int       `json:"view_count"` // monotónicamente creciente
	CreatedAt time.Time `json:"created_at"`
}
