package storage

import (
	"context"
	"encoding/json"
)

// Claves de colección compartidas entre usuarios. Settings y onboarding
// viven en claves por-usuario (ver SettingsKey/OnboardingKey).
const (
	KeyPets            = "pets"
	KeyGuides          = "guides"
	KeyTaskCompletions = "task_completions"
	KeyShareLinks      = "share_links"
	KeyCheatSheets     = "cheat_sheets"
)

func SettingsKey(userID string) string {
	return "settings:" + userID
}

func OnboardingKey(userID string) string {
	return "onboarding:" + userID
}

// Store persiste un blob por clave. Sin direccionamiento parcial ni índices
// secundarios: toda búsqueda es un scan lineal que hace el façade. Tradeoff
// deliberado para datasets locales chicos, de un solo usuario a la vez; no
// reutilizar tal cual para storage multi-usuario server-side.
type Store interface {
	// Load devuelve (payload, true, nil) si la clave existe.
	Load(ctx context.Context, key string) ([]byte, bool, error)
	// Save reemplaza el blob completo de la clave.
	Save(ctx context.Context, key string, payload []byte) error
	// Delete elimina la clave; no-op si no existe.
	Delete(ctx context.Context, key string) error
}

// LoadCollection decodifica la colección completa de una clave.
// Clave ausente o blob corrupto degradan a colección vacía, nunca error:
// se cambia pérdida de datos por disponibilidad. Los errores de I/O del
// store sí se propagan.
func LoadCollection[T any](ctx context.Context, s Store, key string) ([]T, error) {
	payload, ok, err := s.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		// blob corrupto == "la colección todavía no existe"
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// SaveCollection reemplaza la colección completa de una clave.
func SaveCollection[T any](ctx context.Context, s Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.Save(ctx, key, payload)
}

// LoadOne lee un objeto suelto (settings, onboarding). Ausencia o
// corrupción devuelven ok=false.
func LoadOne[T any](ctx context.Context, s Store, key string) (T, bool, error) {
	var zero T

	payload, ok, err := s.Load(ctx, key)
	if err != nil {
		return zero, false, err
	}
	if !ok {
		return zero, false, nil
	}

	var item T
	if err := json.Unmarshal(payload, &item); err != nil {
		return zero, false, nil
	}
	return item, true, nil
}

// SaveOne escribe un objeto suelto.
func SaveOne[T any](ctx context.Context, s Store, key string, item T) error {
	payload, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return s.Save(ctx, key, payload)
}
