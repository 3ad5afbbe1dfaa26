package settings

import "time"

// AppSettings es la fila lógica de configuración por usuario. No se
// persiste eagerly: la ausencia se materializa en defaults al leer.
type AppSettings struct {
	UserID string `json:"user_id"`

	AutoSaveEnabled      bool `json:"auto_save_enabled"`
	NotificationsEnabled bool `json:"notifications_enabled"`
	OnboardingCompleted  bool `json:"onboarding_completed"`

	UpdatedAt time.Time `json:"updated_at"`
}

// Defaults devuelve los valores iniciales de un usuario.
func Defaults(userID string) AppSettings {
	return AppSettings{
		UserID:               userID,
		AutoSaveEnabled:      true,
		NotificationsEnabled: true,
		OnboardingCompleted:  false,
	}
}

// OnboardingState es el registro transitorio del onboarding. Se borra
// entero al completar el flujo.
type OnboardingState struct {
	UserID string `json:"user_id"`

	CurrentStep    string   `json:"current_step"`
	CompletedSteps []string `json:"completed_steps"`

	FirstPetID   string `json:"first_pet_id,omitempty"`
	FirstGuideID string `json:"first_guide_id,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

// StepInitial es el paso inicial del onboarding.
const StepInitial = "welcome"
