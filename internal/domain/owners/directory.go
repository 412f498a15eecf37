package owners

import (
	"context"
	"strings"

	"entaltek-sabueso/internal/domain/dogs"
)

// Este archivo implementa los directories que consumen otros módulos
// (dogs, checkins) sin que esos módulos importen owners.

// Exists satisface dogs.OwnerDirectory.
func (s *Service) Exists(ctx context.Context, ownerID string) (bool, error) {
	_, err := s.repo.GetByID(ctx, strings.TrimSpace(ownerID))
	if err != nil {
		return false, nil
	}
	return true, nil
}

// Summary satisface dogs.OwnerDirectory.
func (s *Service) Summary(ctx context.Context, ownerID string) (dogs.OwnerSummary, error) {
	o, err := s.repo.GetByID(ctx, strings.TrimSpace(ownerID))
	if err != nil {
		return dogs.OwnerSummary{}, ErrNotFound
	}
	return dogs.OwnerSummary{
		ID:        o.ID,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Email:     o.Email,
		Phone:     o.Phone,
	}, nil
}

// FullNameOf satisface checkins.OwnerDirectory (snapshot del nombre al
// momento del check-in).
func (s *Service) FullNameOf(ctx context.Context, ownerID string) (string, error) {
	o, err := s.repo.GetByID(ctx, strings.TrimSpace(ownerID))
	if err != nil {
		return "", ErrNotFound
	}
	return o.FullName(), nil
}
