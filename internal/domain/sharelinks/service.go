package sharelinks

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-care-guides/internal/platform/identity"
	"pet-care-guides/internal/platform/logger"
	"pet-care-guides/internal/ports/storage"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("share link not found")
)

// máximo de reintentos si un código generado colisiona con uno existente.
// El keyspace (57^8) hace la colisión casi imposible, pero reintentar es
// trivial así que lo hacemos igual.
const maxCodeAttempts = 5

type Service struct {
	store storage.Store
	log   logger.Logger
	now   func() time.Time
	newID func() string
}

func NewService(store storage.Store, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		store: store,
		log:   log.With("component", "sharelinks"),
		now:   time.Now,
		newID: identity.NewID,
	}
}

// Create genera un link nuevo para la guía y desactiva todos los demás de
// esa guía: por construcción hay a lo sumo un link activo por guía. Es un
// invariante blando, mantenido solo acá; el store no lo prohíbe.
func (s *Service) Create(ctx context.Context, guideID, userID string, expiresInDays *int) (ShareableLink, error) {
	guideID = strings.TrimSpace(guideID)
	userID = strings.TrimSpace(userID)
	if guideID == "" || userID == "" {
		return ShareableLink{}, ErrInvalidInput
	}

	links, err := storage.LoadCollection[ShareableLink](ctx, s.store, storage.KeyShareLinks)
	if err != nil {
		return ShareableLink{}, err
	}

	for i := range links {
		if links[i].GuideID == guideID && links[i].IsActive {
			links[i].IsActive = false
		}
	}

	existing := make(map[string]struct{}, len(links))
	for _, l := range links {
		existing[l.Code] = struct{}{}
	}

	var code string
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err = generateCode()
		if err != nil {
			return ShareableLink{}, err
		}
		if _, taken := existing[code]; !taken {
			break
		}
		code = ""
	}
	if code == "" {
		return ShareableLink{}, errors.New("share code space exhausted")
	}

	now := s.now()
	link := ShareableLink{
		ID:        s.newID(),
		GuideID:   guideID,
		UserID:    userID,
		Code:      code,
		IsActive:  true,
		ViewCount: 0,
		CreatedAt: now,
	}
	if expiresInDays != nil {
		exp := now.Add(time.Duration(*expiresInDays) * 24 * time.Hour)
		link.ExpiresAt = &exp
	}

	links = append(links, link)
	if err := storage.SaveCollection(ctx, s.store, storage.KeyShareLinks, links); err != nil {
		return ShareableLink{}, err
	}

	s.log.Info("share link created", "guide_id", guideID, "expires", expiresInDays != nil)
	return link, nil
}

// GetByCode resuelve un código. Devuelve nil (no error) si el código no
// existe, el link está inactivo, o ya expiró — expiración lazy al leer.
func (s *Service) GetByCode(ctx context.Context, code string) (*ShareableLink, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil
	}

	links, err := storage.LoadCollection[ShareableLink](ctx, s.store, storage.KeyShareLinks)
	if err != nil {
		return nil, err
	}

	for _, l := range links {
		if l.Code != code {
			continue
		}
		if !l.IsActive {
			return nil, nil
		}
		if l.ExpiresAt != nil && l.ExpiresAt.Before(s.now()) {
			return nil, nil
		}
		out := l
		return &out, nil
	}
	return nil, nil
}

// RecordView incrementa view_count. Es el efecto colateral de leer una
// guía compartida: una lectura cuenta una vista, dos lecturas cuentan dos.
func (s *Service) RecordView(ctx context.Context, linkID string) error {
	links, err := storage.LoadCollection[ShareableLink](ctx, s.store, storage.KeyShareLinks)
	if err != nil {
		return err
	}

	for i := range links {
		if links[i].ID == linkID {
			links[i].ViewCount++
			return storage.SaveCollection(ctx, s.store, storage.KeyShareLinks, links)
		}
	}
	return ErrNotFound
}

// Deactivate apaga un link. Idempotente: desactivar dos veces o desactivar
// un id inexistente no es error.
func (s *Service) Deactivate(ctx context.Context, linkID string) error {
	links, err := storage.LoadCollection[ShareableLink](ctx, s.store, storage.KeyShareLinks)
	if err != nil {
		return err
	}

	changed := false
	for i := range links {
		if links[i].ID == linkID && links[i].IsActive {
			links[i].IsActive = false
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return storage.SaveCollection(ctx, s.store, storage.KeyShareLinks, links)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]ShareableLink, error) {
	links, err := storage.LoadCollection[ShareableLink](ctx, s.store, storage.KeyShareLinks)
	if err != nil {
		return nil, err
	}

	out := make([]ShareableLink, 0)
	for _, l := range links {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *Service) ListByGuide(ctx context.Context, guideID string) ([]ShareableLink, error) {
	links, err := storage.LoadCollection[ShareableLink](ctx, s.store, storage.KeyShareLinks)
	if err != nil {
		return nil, err
	}

	out := make([]ShareableLink, 0)
	for _, l := range links {
		if l.GuideID == guideID {
			out = append(out, l)
		}
	}
	return out, nil
}

// DeleteByGuide elimina todos los links de una guía; paso del cascade de
// DeleteGuide.
func (s *Service) DeleteByGuide(ctx context.Context, guideID string) error {
	links, err := storage.LoadCollection[ShareableLink](ctx, s.store, storage.KeyShareLinks)
	if err != nil {
		return err
	}

	kept := make([]ShareableLink, 0, len(links))
	for _, l := range links {
		if l.GuideID != guideID {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(links) {
		return nil
	}
	return storage.SaveCollection(ctx, s.store, storage.KeyShareLinks, kept)
}
