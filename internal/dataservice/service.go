// Package dataservice expone el contrato público de la capa de datos: CRUD
// atómico a ojos de la UI sobre mascotas, guías, completions, links
// compartibles, cheat sheets, settings y onboarding. Un solo escritor
// lógico por sesión de usuario; cada operación es un read-modify-write de
// colecciones completas (ver ports/storage).
package dataservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-care-guides/internal/domain/cheatsheets"
	"pet-care-guides/internal/domain/guides"
	"pet-care-guides/internal/domain/pets"
	"pet-care-guides/internal/domain/settings"
	"pet-care-guides/internal/domain/sharelinks"
	"pet-care-guides/internal/domain/tasks"
	"pet-care-guides/internal/platform/identity"
	"pet-care-guides/internal/platform/logger"
	"pet-care-guides/internal/ports/storage"
)

var (
	// ErrNotFound: update/delete/duplicate sobre un id inexistente falla
	// fuerte, nunca no-op silencioso.
	ErrNotFound = errors.New("not found")
	// ErrUnauthenticated: operación que requiere user id llamada sin uno.
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrInvalidInput    = errors.New("invalid input")
)

// DataService es el contrato que consumen las capas de presentación
// (UI/PDF/AI). Devuelve datos planos, nunca tipos de UI. Una implementación
// de producción (Service sobre un Store persistente) y el doble de test se
// obtienen inyectando el adaptador de storage que corresponda.
type DataService interface {
	// Pets
	CreatePet(ctx context.Context, userID string, in CreatePetInput) (pets.Pet, error)
	GetPets(ctx context.Context, userID string) ([]pets.Pet, error)
	GetPet(ctx context.Context, id string) (pets.Pet, error)
	UpdatePet(ctx context.Context, id string, in UpdatePetInput) (pets.Pet, error)
	DeletePet(ctx context.Context, id string) error
	MarkPetDeceased(ctx context.Context, id, date string) (pets.Pet, error)
	RestorePet(ctx context.Context, id string) (pets.Pet, error)

	// Guides
	CreateGuide(ctx context.Context, userID string, in CreateGuideInput) (guides.Guide, error)
	GetGuides(ctx context.Context, userID string) ([]guides.Guide, error)
	GetGuide(ctx context.Context, id string) (guides.Guide, error)
	UpdateGuide(ctx context.Context, id string, in UpdateGuideInput) (guides.Guide, error)
	DeleteGuide(ctx context.Context, id string) error
	DuplicateGuide(ctx context.Context, id string) (guides.Guide, error)
	GetGuidePets(ctx context.Context, guideID string) ([]pets.Pet, error)
	GetGuideTasks(ctx context.Context, guideID string) ([]tasks.Task, error)

	// Task completions
	GetTaskCompletions(ctx context.Context, guideID, date string) ([]tasks.TaskCompletion, error)
	MarkTaskComplete(ctx context.Context, completion tasks.TaskCompletion) (tasks.TaskCompletion, error)
	MarkTaskIncomplete(ctx context.Context, taskID, date string) error

	// Cheat sheets
	SaveCheatSheet(ctx context.Context, guideID, content, modelUsed string) (cheatsheets.CheatSheet, error)
	GetCheatSheet(ctx context.Context, guideID string) (*cheatsheets.CheatSheet, error)
	DeleteCheatSheet(ctx context.Context, guideID string) error

	// Settings / onboarding
	GetSettings(ctx context.Context, userID string) (settings.AppSettings, error)
	UpdateSettings(ctx context.Context, userID string, in UpdateSettingsInput) (settings.AppSettings, error)
	GetOnboardingState(ctx context.Context, userID string) (*settings.OnboardingState, error)
	AdvanceOnboarding(ctx context.Context, userID, step string, patch OnboardingPatch) (settings.OnboardingState, error)
	CompleteOnboarding(ctx context.Context, userID string) error

	// Share links
	CreateShareLink(ctx context.Context, guideID, userID string, expiresInDays *int) (sharelinks.ShareableLink, error)
	GetShareLink(ctx context.Context, code string) (*sharelinks.ShareableLink, error)
	GetSharedGuide(ctx context.Context, code string) (*guides.Guide, error)
	DeactivateShareLink(ctx context.Context, linkID string) error
	GetShareLinks(ctx context.Context, userID string) ([]sharelinks.ShareableLink, error)

	// Import / export / clear
	ExportAllData(ctx context.Context, userID string) (ExportedData, error)
	ImportData(ctx context.Context, userID string, data ExportedData) error
	ClearAllData(ctx context.Context, userID string) error
}

// Service es la implementación de producción del façade.
type Service struct {
	store storage.Store
	links *sharelinks.Service
	log   logger.Logger
	now   func() time.Time
	newID func() string
}

var _ DataService = (*Service)(nil)

func NewService(store storage.Store, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		store: store,
		links: sharelinks.NewService(store, log),
		log:   log.With("component", "dataservice"),
		now:   time.Now,
		newID: identity.NewID,
	}
}

func requireUser(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", ErrUnauthenticated
	}
	return userID, nil
}
