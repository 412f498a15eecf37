package checkins

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

// DogSnapshot es lo que este módulo necesita del perro al registrarlo.
type DogSnapshot struct {
	Name    string
	OwnerID string
}

// DogDirectory y OwnerDirectory los implementan dogs y owners (vía el
// wiring del router); interfaces locales para cortar el ciclo de imports.
type DogDirectory interface {
	Snapshot(ctx context.Context, dogID string) (DogSnapshot, error)
	MarkCheckedIn(ctx context.Context, dogID string, at time.Time) error
	MarkCheckedOut(ctx context.Context, dogID string, at time.Time) error
}

type OwnerDirectory interface {
	FullNameOf(ctx context.Context, ownerID string) (string, error)
}

type Service struct {
	repo   Repository
	dogs   DogDirectory
	owners OwnerDirectory
	now    func() time.Time
}

func NewService(repo Repository, dogs DogDirectory, owners OwnerDirectory) *Service {
	return &Service{
		repo:   repo,
		dogs:   dogs,
		owners: owners,
		now:    time.Now,
	}
}

type CheckInInput struct {
	DogID            string
	ServiceType      ServiceType
	Notes            string
	ExpectedCheckOut *time.Time
	CaretakerID      string
}

// CheckIn abre una visita para el perro.
// Invariante: a lo sumo un check-in activo por perro; si ya hay uno,
// Conflict y el store queda intacto. DogName/OwnerName se congelan acá.
func (s *Service) CheckIn(ctx context.Context, in CheckInInput) (CheckIn, error) {
	dogID := strings.TrimSpace(in.DogID)
	if dogID == "" {
		return CheckIn{}, ErrInvalidInput
	}
	if !ValidServiceType(in.ServiceType) {
		return CheckIn{}, ErrInvalidInput
	}

	snap, err := s.dogs.Snapshot(ctx, dogID)
	if err != nil {
		return CheckIn{}, ErrNotFound
	}

	if _, err := s.repo.GetActiveByDog(ctx, dogID); err == nil {
		return CheckIn{}, ErrConflict
	}

	// dueño colgante => snapshot vacío, el check-in no se bloquea por eso
	ownerName, err := s.owners.FullNameOf(ctx, snap.OwnerID)
	if err != nil {
		ownerName = ""
	}

	now := s.now()
	c := CheckIn{
		ID:               uuid.NewString(),
		DogID:            dogID,
		DogName:          snap.Name,
		OwnerName:        ownerName,
		ServiceType:      in.ServiceType,
		CheckInTime:      now,
		ExpectedCheckOut: in.ExpectedCheckOut,
		Notes:            strings.TrimSpace(in.Notes),
		Status:           StatusActive,
		CaretakerID:      strings.TrimSpace(in.CaretakerID),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return CheckIn{}, err
	}
	if err := s.dogs.MarkCheckedIn(ctx, dogID, now); err != nil {
		return CheckIn{}, err
	}
	return c, nil
}

// CheckOut cierra un check-in activo. Un check-in completado es inmutable
// e invisible para esta operación: NotFound, no Conflict.
func (s *Service) CheckOut(ctx context.Context, checkInID string) (CheckIn, error) {
	checkInID = strings.TrimSpace(checkInID)
	if checkInID == "" {
		return CheckIn{}, ErrInvalidInput
	}

	c, err := s.repo.GetByID(ctx, checkInID)
	if err != nil {
		return CheckIn{}, ErrNotFound
	}
	if c.Status != StatusActive {
		return CheckIn{}, ErrNotFound
	}

	now := s.now()
	c.Status = StatusCompleted
	c.CheckOutTime = &now

	if err := s.repo.Update(ctx, c); err != nil {
		return CheckIn{}, err
	}
	if err := s.dogs.MarkCheckedOut(ctx, c.DogID, now); err != nil {
		return CheckIn{}, err
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (CheckIn, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return CheckIn{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]CheckIn, error) {
	return s.repo.List(ctx)
}

// HistoryByDog devuelve todas las visitas del perro, en orden del store.
func (s *Service) HistoryByDog(ctx context.Context, dogID string) ([]CheckIn, error) {
	dogID = strings.TrimSpace(dogID)
	if dogID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByDog(ctx, dogID)
}

// ActiveByDog devuelve el check-in activo del perro, si hay.
func (s *Service) ActiveByDog(ctx context.Context, dogID string) (CheckIn, bool, error) {
	dogID = strings.TrimSpace(dogID)
	if dogID == "" {
		return CheckIn{}, false, ErrInvalidInput
	}
	c, err := s.repo.GetActiveByDog(ctx, dogID)
	if err != nil {
		return CheckIn{}, false, nil
	}
	return c, true, nil
}

// ListByCaretaker: visitas registradas por un empleado, más recientes primero.
func (s *Service) ListByCaretaker(ctx context.Context, employeeID string, limit int) ([]CheckIn, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByCaretaker(ctx, employeeID, limit)
}
