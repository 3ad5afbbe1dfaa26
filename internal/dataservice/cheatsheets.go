package dataservice

import (
	"context"
	"strings"

	"pet-care-guides/internal/domain/cheatsheets"
	"pet-care-guides/internal/ports/storage"
)

// SaveCheatSheet reemplaza cualquier sheet previo de la guía: a lo sumo uno
// persistido por guide_id.
func (s *Service) SaveCheatSheet(ctx context.Context, guideID, content, modelUsed string) (cheatsheets.CheatSheet, error) {
	if strings.TrimSpace(guideID) == "" {
		return cheatsheets.CheatSheet{}, ErrInvalidInput
	}

	sheet := cheatsheets.CheatSheet{
		ID:          s.newID(),
		GuideID:     guideID,
		Content:     content,
		ModelUsed:   modelUsed,
		GeneratedAt: s.now(),
	}

	all, err := storage.LoadCollection[cheatsheets.CheatSheet](ctx, s.store, storage.KeyCheatSheets)
	if err != nil {
		return cheatsheets.CheatSheet{}, err
	}

	kept := make([]cheatsheets.CheatSheet, 0, len(all)+1)
	for _, c := range all {
		if c.GuideID != guideID {
			kept = append(kept, c)
		}
	}
	kept = append(kept, sheet)

	if err := storage.SaveCollection(ctx, s.store, storage.KeyCheatSheets, kept); err != nil {
		return cheatsheets.CheatSheet{}, err
	}
	return sheet, nil
}

// GetCheatSheet devuelve nil (no error) si la guía no tiene sheet: ausencia
// esperada, no condición de error.
func (s *Service) GetCheatSheet(ctx context.Context, guideID string) (*cheatsheets.CheatSheet, error) {
	all, err := storage.LoadCollection[cheatsheets.CheatSheet](ctx, s.store, storage.KeyCheatSheets)
	if err != nil {
		return nil, err
	}
	for _, c := range all {
		if c.GuideID == guideID {
			out := c
			return &out, nil
		}
	}
	return nil, nil
}

// DeleteCheatSheet es idempotente; también es un paso del cascade de
// DeleteGuide.
func (s *Service) DeleteCheatSheet(ctx context.Context, guideID string) error {
	all, err := storage.LoadCollection[cheatsheets.CheatSheet](ctx, s.store, storage.KeyCheatSheets)
	if err != nil {
		return err
	}

	kept := make([]cheatsheets.CheatSheet, 0, len(all))
	for _, c := range all {
		if c.GuideID != guideID {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(all) {
		return nil
	}
	return storage.SaveCollection(ctx, s.store, storage.KeyCheatSheets, kept)
}
