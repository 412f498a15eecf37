package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"entaltek-sabueso/internal/domain/catalog"
)

type catalogRepo struct {
	mu    sync.RWMutex
	byID  map[string]catalog.Service
	order []string
}

func NewCatalogRepo() catalog.Repository {
	return &catalogRepo{
		byID: make(map[string]catalog.Service),
	}
}

func (r *catalogRepo) Create(ctx context.Context, s catalog.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("service id required")
	}
	if _, exists := r.byID[s.ID]; exists {
		return errors.New("service already exists")
	}
	r.byID[s.ID] = s
	r.order = append(r.order, s.ID)
	return nil
}

func (r *catalogRepo) Update(ctx context.Context, s catalog.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[s.ID]; !exists {
		return ErrNotFound
	}
	r.byID[s.ID] = s
	return nil
}

func (r *catalogRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *catalogRepo) GetByID(ctx context.Context, id string) (catalog.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return catalog.Service{}, ErrNotFound
	}
	return s, nil
}

func (r *catalogRepo) List(ctx context.Context) ([]catalog.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Service, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}
