package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"entaltek-sabueso/internal/domain/dogs"
)

var ErrNotFound = errors.New("not found")

// Los repos de memoria guardan byID + un slice con el orden de inserción:
// List debe devolver el orden original de la colección, y ordenar por
// CreatedAt no es estable cuando los datos seed comparten timestamp.
type dogRepo struct {
	mu    sync.RWMutex
	byID  map[string]dogs.Dog
	order []string
}

func NewDogRepo() dogs.Repository {
	return &dogRepo{
		byID: make(map[string]dogs.Dog),
	}
}

func (r *dogRepo) Create(ctx context.Context, d dogs.Dog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(d.ID) == "" {
		return errors.New("dog id required")
	}
	if _, exists := r.byID[d.ID]; exists {
		return errors.New("dog already exists")
	}
	r.byID[d.ID] = d
	r.order = append(r.order, d.ID)
	return nil
}

func (r *dogRepo) Update(ctx context.Context, d dogs.Dog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(d.ID) == "" {
		return errors.New("dog id required")
	}
	if _, exists := r.byID[d.ID]; !exists {
		return ErrNotFound
	}
	r.byID[d.ID] = d
	return nil
}

func (r *dogRepo) GetByID(ctx context.Context, id string) (dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[id]
	if !ok {
		return dogs.Dog{}, ErrNotFound
	}
	return d, nil
}

func (r *dogRepo) List(ctx context.Context) ([]dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]dogs.Dog, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *dogRepo) ListByOwner(ctx context.Context, ownerID string) ([]dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]dogs.Dog, 0)
	for _, id := range r.order {
		if d := r.byID[id]; d.OwnerID == ownerID {
			out = append(out, d)
		}
	}
	return out, nil
}
