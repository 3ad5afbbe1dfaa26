package dataservice

import (
	"context"

	"pet-care-guides/internal/domain/guides"
	"pet-care-guides/internal/domain/sharelinks"
)

func (s *Service) CreateShareLink(ctx context.Context, guideID, userID string, expiresInDays *int) (sharelinks.ShareableLink, error) {
	userID, err := requireUser(userID)
	if err != nil {
		return sharelinks.ShareableLink{}, err
	}
	return s.links.Create(ctx, guideID, userID, expiresInDays)
}

// GetShareLink devuelve nil para código inexistente, inactivo o expirado;
// el caller distingue "no está" de error real por la ausencia de error.
func (s *Service) GetShareLink(ctx context.Context, code string) (*sharelinks.ShareableLink, error) {
	return s.links.GetByCode(ctx, code)
}

// GetSharedGuide resuelve el código y, sobre un hit válido, incrementa
// view_count ANTES de devolver la guía. La lectura tiene efecto de
// escritura a propósito (analytics): llamar dos veces registra dos vistas.
func (s *Service) GetSharedGuide(ctx context.Context, code string) (*guides.Guide, error) {
	link, err := s.links.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, nil
	}

	if err := s.links.RecordView(ctx, link.ID); err != nil {
		return nil, err
	}

	g, err := s.GetGuide(ctx, link.GuideID)
	if err == ErrNotFound {
		// link huérfano de un cascade interrumpido: se comporta como
		// código inválido
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *Service) DeactivateShareLink(ctx context.Context, linkID string) error {
	return s.links.Deactivate(ctx, linkID)
}

func (s *Service) GetShareLinks(ctx context.Context, userID string) ([]sharelinks.ShareableLink, error) {
	userID, err := requireUser(userID)
	if err != nil {
		return nil, err
	}
	return s.links.ListByUser(ctx, userID)
}
