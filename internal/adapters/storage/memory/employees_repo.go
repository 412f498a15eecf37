package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"entaltek-sabueso/internal/domain/employees"
)

type employeeRepo struct {
	mu    sync.RWMutex
	byID  map[string]employees.Employee
	order []string
}

func NewEmployeeRepo() employees.Repository {
	return &employeeRepo{
		byID: make(map[string]employees.Employee),
	}
}

func (r *employeeRepo) Create(ctx context.Context, e employees.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(e.ID) == "" {
		return errors.New("employee id required")
	}
	if _, exists := r.byID[e.ID]; exists {
		return errors.New("employee already exists")
	}
	r.byID[e.ID] = cloneEmployee(e)
	r.order = append(r.order, e.ID)
	return nil
}

func (r *employeeRepo) Update(ctx context.Context, e employees.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(e.ID) == "" {
		return errors.New("employee id required")
	}
	if _, exists := r.byID[e.ID]; !exists {
		return ErrNotFound
	}
	r.byID[e.ID] = cloneEmployee(e)
	return nil
}

func (r *employeeRepo) GetByID(ctx context.Context, id string) (employees.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return employees.Employee{}, ErrNotFound
	}
	return cloneEmployee(e), nil
}

func (r *employeeRepo) List(ctx context.Context) ([]employees.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]employees.Employee, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneEmployee(r.byID[id]))
	}
	return out, nil
}

// cloneEmployee copia el slice de asignaciones: el caller no debe poder
// mutar el store por afuera del repo.
func cloneEmployee(e employees.Employee) employees.Employee {
	if e.AssignedDogIDs != nil {
		ids := make([]string, len(e.AssignedDogIDs))
		copy(ids, e.AssignedDogIDs)
		e.AssignedDogIDs = ids
	}
	return e
}
