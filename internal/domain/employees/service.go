package employees

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// DogDirectory lo implementa el módulo de dogs; interfaz local para no
// importar ese paquete desde acá.
type DogDirectory interface {
	Exists(ctx context.Context, dogID string) (bool, error)
}

type Service struct {
	repo Repository
	dogs DogDirectory
	now  func() time.Time
}

func NewService(repo Repository, dogs DogDirectory) *Service {
	return &Service{
		repo: repo,
		dogs: dogs,
		now:  time.Now,
	}
}

type CreateInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Role      Role
	HireDate  *time.Time
	Photo     string
}

// Create da de alta a un empleado: teléfono opcional, rol obligatorio y
// validado estricto, arranca active y sin perros asignados.
func (s *Service) Create(ctx context.Context, in CreateInput) (Employee, error) {
	if strings.TrimSpace(in.FirstName) == "" ||
		strings.TrimSpace(in.LastName) == "" ||
		strings.TrimSpace(in.Email) == "" {
		return Employee{}, ErrInvalidInput
	}
	if !ValidRole(in.Role) {
		return Employee{}, ErrInvalidInput
	}

	now := s.now()
	hire := now
	if in.HireDate != nil {
		hire = *in.HireDate
	}

	e := Employee{
		ID:             uuid.NewString(),
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		Email:          strings.TrimSpace(in.Email),
		Phone:          strings.TrimSpace(in.Phone),
		Role:           in.Role,
		Status:         StatusActive,
		HireDate:       hire,
		Photo:          strings.TrimSpace(in.Photo),
		AssignedDogIDs: []string{},
		CreatedAt:      now,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return Employee{}, err
	}
	return e, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Employee, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Employee{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Employee, error) {
	return s.repo.List(ctx)
}

// SetStatus es idempotente: volver a activar un empleado activo no es error.
func (s *Service) SetStatus(ctx context.Context, id string, status Status) (Employee, error) {
	if status != StatusActive && status != StatusInactive {
		return Employee{}, ErrInvalidInput
	}

	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Employee{}, ErrNotFound
	}

	if e.Status == status {
		return e, nil
	}

	e.Status = status
	if err := s.repo.Update(ctx, e); err != nil {
		return Employee{}, err
	}
	return e, nil
}

// AssignDog agrega un perro a la lista del empleado. Conflict si ya estaba,
// NotFound si empleado o perro no existen. Todo-o-nada.
func (s *Service) AssignDog(ctx context.Context, employeeID, dogID string) error {
	employeeID = strings.TrimSpace(employeeID)
	dogID = strings.TrimSpace(dogID)
	if employeeID == "" || dogID == "" {
		return ErrInvalidInput
	}

	e, err := s.repo.GetByID(ctx, employeeID)
	if err != nil {
		return ErrNotFound
	}

	ok, err := s.dogs.Exists(ctx, dogID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	for _, id := range e.AssignedDogIDs {
		if id == dogID {
			return ErrConflict
		}
	}

	e.AssignedDogIDs = append(e.AssignedDogIDs, dogID)
	return s.repo.Update(ctx, e)
}

func (s *Service) UnassignDog(ctx context.Context, employeeID, dogID string) error {
	employeeID = strings.TrimSpace(employeeID)
	dogID = strings.TrimSpace(dogID)
	if employeeID == "" || dogID == "" {
		return ErrInvalidInput
	}

	e, err := s.repo.GetByID(ctx, employeeID)
	if err != nil {
		return ErrNotFound
	}

	kept := make([]string, 0, len(e.AssignedDogIDs))
	found := false
	for _, id := range e.AssignedDogIDs {
		if id == dogID {
			found = true
			continue
		}
		kept = append(kept, id)
	}
	if !found {
		return ErrNotFound
	}

	e.AssignedDogIDs = kept
	return s.repo.Update(ctx, e)
}
