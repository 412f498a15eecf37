package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"entaltek-sabueso/internal/domain/checkins"
)

type checkInRepo struct {
	mu    sync.RWMutex
	byID  map[string]checkins.CheckIn
	order []string
}

func NewCheckInRepo() checkins.Repository {
	return &checkInRepo{
		byID: make(map[string]checkins.CheckIn),
	}
}

func (r *checkInRepo) Create(ctx context.Context, c checkins.CheckIn) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("check-in id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("check-in already exists")
	}
	r.byID[c.ID] = c
	r.order = append(r.order, c.ID)
	return nil
}

func (r *checkInRepo) Update(ctx context.Context, c checkins.CheckIn) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("check-in id required")
	}
	if _, exists := r.byID[c.ID]; !exists {
		return ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *checkInRepo) GetByID(ctx context.Context, id string) (checkins.CheckIn, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return checkins.CheckIn{}, ErrNotFound
	}
	return c, nil
}

func (r *checkInRepo) List(ctx context.Context) ([]checkins.CheckIn, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]checkins.CheckIn, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *checkInRepo) ListByDog(ctx context.Context, dogID string) ([]checkins.CheckIn, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]checkins.CheckIn, 0)
	for _, id := range r.order {
		if c := r.byID[id]; c.DogID == dogID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *checkInRepo) GetActiveByDog(ctx context.Context, dogID string) (checkins.CheckIn, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		c := r.byID[id]
		if c.DogID == dogID && c.Status == checkins.StatusActive {
			return c, nil
		}
	}
	return checkins.CheckIn{}, ErrNotFound
}

func (r *checkInRepo) ListByCaretaker(ctx context.Context, employeeID string, limit int) ([]checkins.CheckIn, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]checkins.CheckIn, 0)
	for _, id := range r.order {
		if c := r.byID[id]; c.CaretakerID == employeeID {
			out = append(out, c)
		}
	}

	// más recientes primero
	sort.Slice(out, func(i, j int) bool {
		return out[i].CheckInTime.After(out[j].CheckInTime)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
