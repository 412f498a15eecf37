package catalog

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

// Catalog administra el catálogo de servicios. Es read-mostly: el CRUD
// existe para la pantalla de administración, sin invariantes extra.
type Catalog struct {
	repo Repository
	now  func() time.Time
}

func NewCatalog(repo Repository) *Catalog {
	return &Catalog{
		repo: repo,
		now:  time.Now,
	}
}

type ServiceInput struct {
	Name        string
	Description string
	Price       float64
	Type        Type
	Duration    string
}

func (c *Catalog) Create(ctx context.Context, in ServiceInput) (Service, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Service{}, ErrInvalidInput
	}
	if in.Price < 0 {
		return Service{}, ErrInvalidInput
	}
	if !ValidType(in.Type) {
		return Service{}, ErrInvalidInput
	}

	s := Service{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Type:        in.Type,
		Duration:    strings.TrimSpace(in.Duration),
		CreatedAt:   c.now(),
	}

	if err := c.repo.Create(ctx, s); err != nil {
		return Service{}, err
	}
	return s, nil
}

func (c *Catalog) Update(ctx context.Context, id string, in ServiceInput) (Service, error) {
	s, err := c.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Service{}, ErrNotFound
	}

	if strings.TrimSpace(in.Name) == "" {
		return Service{}, ErrInvalidInput
	}
	if in.Price < 0 {
		return Service{}, ErrInvalidInput
	}
	if !ValidType(in.Type) {
		return Service{}, ErrInvalidInput
	}

	s.Name = strings.TrimSpace(in.Name)
	s.Description = strings.TrimSpace(in.Description)
	s.Price = in.Price
	s.Type = in.Type
	s.Duration = strings.TrimSpace(in.Duration)

	if err := c.repo.Update(ctx, s); err != nil {
		return Service{}, err
	}
	return s, nil
}

func (c *Catalog) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	if err := c.repo.Delete(ctx, id); err != nil {
		return ErrNotFound
	}
	return nil
}

func (c *Catalog) GetByID(ctx context.Context, id string) (Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Service{}, ErrInvalidInput
	}
	return c.repo.GetByID(ctx, id)
}

func (c *Catalog) List(ctx context.Context) ([]Service, error) {
	return c.repo.List(ctx)
}
