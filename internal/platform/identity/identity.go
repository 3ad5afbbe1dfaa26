// Package identity concentra ids opacos y formatos de fecha/hora que
// comparten todos los servicios.
package identity

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout es el formato de fechas de calendario (tareas, fallecimiento).
const DateLayout = "2006-01-02"

// NewID genera un identificador opaco único.
func NewID() string {
	return uuid.NewString()
}

// Timestamp serializa un instante como ISO-8601 en UTC.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Date serializa un instante como fecha de calendario.
func Date(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDate valida una fecha de calendario en formato YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
