package dataservice

import (
	"context"
	"strings"

	"pet-care-guides/internal/domain/tasks"
	"pet-care-guides/internal/platform/identity"
	"pet-care-guides/internal/ports/storage"
)

func (s *Service) GetTaskCompletions(ctx context.Context, guideID, date string) ([]tasks.TaskCompletion, error) {
	all, err := storage.LoadCollection[tasks.TaskCompletion](ctx, s.store, storage.KeyTaskCompletions)
	if err != nil {
		return nil, err
	}

	out := make([]tasks.TaskCompletion, 0)
	for _, c := range all {
		if c.GuideID == guideID && c.Date == date {
			out = append(out, c)
		}
	}
	return out, nil
}

// MarkTaskComplete hace upsert por (task_id, date): cualquier fila previa
// de esa clave se elimina antes de insertar la nueva. Reemplazo, no merge.
func (s *Service) MarkTaskComplete(ctx context.Context, completion tasks.TaskCompletion) (tasks.TaskCompletion, error) {
	if strings.TrimSpace(completion.TaskID) == "" ||
		strings.TrimSpace(completion.GuideID) == "" {
		return tasks.TaskCompletion{}, ErrInvalidInput
	}
	if _, err := identity.ParseDate(completion.Date); err != nil {
		return tasks.TaskCompletion{}, ErrInvalidInput
	}

	if completion.ID == "" {
		completion.ID = s.newID()
	}
	if completion.CompletedAt.IsZero() {
		completion.CompletedAt = s.now()
	}

	all, err := storage.LoadCollection[tasks.TaskCompletion](ctx, s.store, storage.KeyTaskCompletions)
	if err != nil {
		return tasks.TaskCompletion{}, err
	}

	kept := make([]tasks.TaskCompletion, 0, len(all)+1)
	for _, c := range all {
		if c.TaskID == completion.TaskID && c.Date == completion.Date {
			continue
		}
		kept = append(kept, c)
	}
	kept = append(kept, completion)

	if err := storage.SaveCollection(ctx, s.store, storage.KeyTaskCompletions, kept); err != nil {
		return tasks.TaskCompletion{}, err
	}
	return completion, nil
}

// MarkTaskIncomplete borra por clave compuesta; no-op si no existe
// (idempotente).
func (s *Service) MarkTaskIncomplete(ctx context.Context, taskID, date string) error {
	all, err := storage.LoadCollection[tasks.TaskCompletion](ctx, s.store, storage.KeyTaskCompletions)
	if err != nil {
		return err
	}

	kept := make([]tasks.TaskCompletion, 0, len(all))
	for _, c := range all {
		if c.TaskID == taskID && c.Date == date {
			continue
		}
		kept = append(kept, c)
	}
	if len(kept) == len(all) {
		return nil
	}
	return storage.SaveCollection(ctx, s.store, storage.KeyTaskCompletions, kept)
}

func (s *Service) deleteCompletionsByGuide(ctx context.Context, guideID string) error {
	all, err := storage.LoadCollection[tasks.TaskCompletion](ctx, s.store, storage.KeyTaskCompletions)
	if err != nil {
		return err
	}

	kept := make([]tasks.TaskCompletion, 0, len(all))
	for _, c := range all {
		if c.GuideID != guideID {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(all) {
		return nil
	}
	return storage.SaveCollection(ctx, s.store, storage.KeyTaskCompletions, kept)
}
