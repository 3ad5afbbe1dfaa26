package dataservice

import (
	"context"
	"strings"

	"pet-care-guides/internal/domain/settings"
	"pet-care-guides/internal/ports/storage"
)

type UpdateSettingsInput struct {
	AutoSaveEnabled      *bool
	NotificationsEnabled *bool
	OnboardingCompleted  *bool
}

// OnboardingPatch son los datos opcionales que un paso puede registrar.
type OnboardingPatch struct {
	FirstPetID   *string
	FirstGuideID *string
}

// GetSettings materializa defaults si no hay fila persistida. La creación
// es lazy: leer no escribe nada.
func (s *Service) GetSettings(ctx context.Context, userID string) (settings.AppSettings, error) {
	userID, err := requireUser(userID)
	if err != nil {
		return settings.AppSettings{}, err
	}

	st, ok, err := storage.LoadOne[settings.AppSettings](ctx, s.store, storage.SettingsKey(userID))
	if err != nil {
		return settings.AppSettings{}, err
	}
	if !ok {
		return settings.Defaults(userID), nil
	}
	st.UserID = userID
	return st, nil
}

func (s *Service) UpdateSettings(ctx context.Context, userID string, in UpdateSettingsInput) (settings.AppSettings, error) {
	st, err := s.GetSettings(ctx, userID)
	if err != nil {
		return settings.AppSettings{}, err
	}

	if in.AutoSaveEnabled != nil {
		st.AutoSaveEnabled = *in.AutoSaveEnabled
	}
	if in.NotificationsEnabled != nil {
		st.NotificationsEnabled = *in.NotificationsEnabled
	}
	if in.OnboardingCompleted != nil {
		st.OnboardingCompleted = *in.OnboardingCompleted
	}
	st.UpdatedAt = s.now()

	if err := storage.SaveOne(ctx, s.store, storage.SettingsKey(st.UserID), st); err != nil {
		return settings.AppSettings{}, err
	}
	return st, nil
}

// GetOnboardingState devuelve nil si el usuario no tiene onboarding en
// curso (nunca lo empezó, o ya lo completó y la fila se borró).
func (s *Service) GetOnboardingState(ctx context.Context, userID string) (*settings.OnboardingState, error) {
	userID, err := requireUser(userID)
	if err != nil {
		return nil, err
	}

	st, ok, err := storage.LoadOne[settings.OnboardingState](ctx, s.store, storage.OnboardingKey(userID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &st, nil
}

// AdvanceOnboarding registra un paso completado y mueve current_step. La
// fila se materializa lazy en la primera escritura.
func (s *Service) AdvanceOnboarding(ctx context.Context, userID, step string, patch OnboardingPatch) (settings.OnboardingState, error) {
	userID, err := requireUser(userID)
	if err != nil {
		return settings.OnboardingState{}, err
	}
	step = strings.TrimSpace(step)
	if step == "" {
		return settings.OnboardingState{}, ErrInvalidInput
	}

	st, ok, err := storage.LoadOne[settings.OnboardingState](ctx, s.store, storage.OnboardingKey(userID))
	if err != nil {
		return settings.OnboardingState{}, err
	}
	if !ok {
		st = settings.OnboardingState{
			UserID:         userID,
			CurrentStep:    settings.StepInitial,
			CompletedSteps: []string{},
		}
	}

	completed := false
	for _, done := range st.CompletedSteps {
		if done == st.CurrentStep {
			completed = true
			break
		}
	}
	if !completed && st.CurrentStep != "" {
		st.CompletedSteps = append(st.CompletedSteps, st.CurrentStep)
	}
	st.CurrentStep = step

	if patch.FirstPetID != nil {
		st.FirstPetID = *patch.FirstPetID
	}
	if patch.FirstGuideID != nil {
		st.FirstGuideID = *patch.FirstGuideID
	}
	st.UpdatedAt = s.now()

	if err := storage.SaveOne(ctx, s.store, storage.OnboardingKey(userID), st); err != nil {
		return settings.OnboardingState{}, err
	}
	return st, nil
}

// CompleteOnboarding borra el registro transitorio entero y deja la marca
// durable en settings.
func (s *Service) CompleteOnboarding(ctx context.Context, userID string) error {
	userID, err := requireUser(userID)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, storage.OnboardingKey(userID)); err != nil {
		return err
	}

	done := true
	_, err = s.UpdateSettings(ctx, userID, UpdateSettingsInput{OnboardingCompleted: &done})
	return err
}
