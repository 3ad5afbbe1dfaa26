package memory

import (
	"context"
	"sync"

	"pet-care-guides/internal/ports/storage"
)

// Store es el adaptador en memoria: el doble de test del port de storage
// y el backend por defecto cuando no hay persistencia configurada.
type Store struct {
	mu      sync.RWMutex
	buckets map[string][]byte
}

func NewStore() *Store {
	return &Store{
		buckets: make(map[string][]byte),
	}
}

var _ storage.Store = (*Store)(nil)

func (s *Store) Load(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payload, ok := s.buckets[key]
	if !ok {
		return nil, false, nil
	}
	// copia defensiva: el caller no debe poder mutar el bucket
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, true, nil
}

func (s *Store) Save(ctx context.Context, key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(payload))
	copy(stored, payload)
	s.buckets[key] = stored
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.buckets, key)
	return nil
}

// Keys lista las claves presentes; solo para asserts en tests.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.buckets))
	for k := range s.buckets {
		out = append(out, k)
	}
	return out
}
