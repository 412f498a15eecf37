package dogs

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
)

// OwnerSummary es lo mínimo del dueño que este módulo necesita mostrar.
type OwnerSummary struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// OwnerDirectory lo implementa el módulo de owners.
// Interfaz local para evitar ciclos de imports (mismo truco que usamos
// entre checkins y dogs).
type OwnerDirectory interface {
	Exists(ctx context.Context, ownerID string) (bool, error)
	Summary(ctx context.Context, ownerID string) (OwnerSummary, error)
}

type Service struct {
	repo   Repository
	owners OwnerDirectory
	now    func() time.Time
}

func NewService(repo Repository, owners OwnerDirectory) *Service {
	return &Service{
		repo:   repo,
		owners: owners,
		now:    time.Now,
	}
}

type CreateInput struct {
	Name    string
	Breed   string
	Age     int
	Weight  float64
	Photo   string
	OwnerID string
	Medical Medical
}

// Create registra un perro nuevo. El dueño debe existir; un perro recién
// registrado arranca checked-out (aún no está en las instalaciones).
func (s *Service) Create(ctx context.Context, in CreateInput) (Dog, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Dog{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Breed) == "" {
		return Dog{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.OwnerID) == "" {
		return Dog{}, ErrInvalidInput
	}
	if in.Age < 0 || in.Weight <= 0 {
		return Dog{}, ErrInvalidInput
	}

	ok, err := s.owners.Exists(ctx, strings.TrimSpace(in.OwnerID))
	if err != nil {
		return Dog{}, err
	}
	if !ok {
		return Dog{}, ErrNotFound
	}

	med := in.Medical
	if med.Medications == nil {
		med.Medications = []Medication{}
	}

	d := Dog{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Breed:     strings.TrimSpace(in.Breed),
		Age:       in.Age,
		Weight:    in.Weight,
		Photo:     strings.TrimSpace(in.Photo),
		OwnerID:   strings.TrimSpace(in.OwnerID),
		Status:    StatusCheckedOut,
		Medical:   med,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return Dog{}, err
	}
	return d, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Dog, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Dog{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Dog, error) {
	return s.repo.List(ctx)
}

// ListByOwner es la vista inversa owner->perros, calculada bajo demanda.
// Conserva el orden del store.
func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Dog, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByOwner(ctx, ownerID)
}

// OwnerOf resuelve el dueño de un perro. Un OwnerID colgante devuelve
// ok=false, nunca error.
func (s *Service) OwnerOf(ctx context.Context, d Dog) (OwnerSummary, bool) {
	o, err := s.owners.Summary(ctx, d.OwnerID)
	if err != nil {
		return OwnerSummary{}, false
	}
	return o, true
}

// PatchPhoto distingue "no enviado" de "enviado como null" (limpiar foto).
type PatchPhoto struct {
	Present bool
	Value   *string
}

type MedicalPatch struct {
	Vaccines    *Vaccines
	Dewormed    *bool
	Allergies   *string
	Medications *[]Medication
	Notes       *string
	Limitations *string
}

type UpdateProfileInput struct {
	Name    *string
	Breed   *string
	Age     *int
	Weight  *float64
	Photo   PatchPhoto
	Medical *MedicalPatch
}

// UpdateProfile aplica un PATCH real: nil = no tocar.
func (s *Service) UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (Dog, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Dog{}, err
	}

	if in.Name != nil {
		v := strings.TrimSpace(*in.Name)
		if v == "" {
			return Dog{}, ErrInvalidInput
		}
		d.Name = v
	}
	if in.Breed != nil {
		v := strings.TrimSpace(*in.Breed)
		if v == "" {
			return Dog{}, ErrInvalidInput
		}
		d.Breed = v
	}
	if in.Age != nil {
		if *in.Age < 0 {
			return Dog{}, ErrInvalidInput
		}
		d.Age = *in.Age
	}
	if in.Weight != nil {
		if *in.Weight <= 0 {
			return Dog{}, ErrInvalidInput
		}
		d.Weight = *in.Weight
	}
	if in.Photo.Present {
		if in.Photo.Value == nil {
			d.Photo = ""
		} else {
			d.Photo = strings.TrimSpace(*in.Photo.Value)
		}
	}
	if in.Medical != nil {
		m := in.Medical
		if m.Vaccines != nil {
			d.Medical.Vaccines = *m.Vaccines
		}
		if m.Dewormed != nil {
			d.Medical.Dewormed = *m.Dewormed
		}
		if m.Allergies != nil {
			d.Medical.Allergies = strings.TrimSpace(*m.Allergies)
		}
		if m.Medications != nil {
			d.Medical.Medications = *m.Medications
		}
		if m.Notes != nil {
			d.Medical.Notes = strings.TrimSpace(*m.Notes)
		}
		if m.Limitations != nil {
			d.Medical.Limitations = strings.TrimSpace(*m.Limitations)
		}
	}

	if err := s.repo.Update(ctx, d); err != nil {
		return Dog{}, err
	}
	return d, nil
}

// Exists lo consume el módulo de employees al asignar perros.
func (s *Service) Exists(ctx context.Context, dogID string) (bool, error) {
	_, err := s.repo.GetByID(ctx, strings.TrimSpace(dogID))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		// repos de memoria/postgres usan su propio sentinel not-found;
		// cualquier error de lookup se trata como inexistente
		return false, nil
	}
	return true, nil
}

// MarkCheckedIn / MarkCheckedOut son las transiciones de estado que dispara
// el módulo de check-ins. No validan duplicados: esa invariante vive en el
// check-in activo, no en el estado del perro.
func (s *Service) MarkCheckedIn(ctx context.Context, dogID string, at time.Time) error {
	d, err := s.repo.GetByID(ctx, dogID)
	if err != nil {
		return err
	}
	d.Status = StatusCheckedIn
	d.CheckInTime = &at
	return s.repo.Update(ctx, d)
}

func (s *Service) MarkCheckedOut(ctx context.Context, dogID string, at time.Time) error {
	d, err := s.repo.GetByID(ctx, dogID)
	if err != nil {
		return err
	}
	d.Status = StatusCheckedOut
	d.CheckOutTime = &at
	return s.repo.Update(ctx, d)
}
