package cheatsheets

import "time"

// CheatSheet es el resumen generado de una guía. A lo sumo uno persistido
// por guide_id: guardar reemplaza cualquier fila previa de esa guía.
type CheatSheet struct {
	ID      string `json:"id"`
	GuideID string `json:"guide_id"`

	Content     string    `json:"content"`
	ModelUsed   string    `json:"model_used,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}
