package router

import (
	"context"
	"time"

	"entaltek-sabueso/internal/domain/checkins"
	"entaltek-sabueso/internal/domain/dogs"
)

// dogDirectory adapta dogs.Service a checkins.DogDirectory.
// El adapter vive acá porque el router es el único punto de wiring;
// checkins nunca importa dogs.
type dogDirectory struct {
	svc *dogs.Service
}

func (d dogDirectory) Snapshot(ctx context.Context, dogID string) (checkins.DogSnapshot, error) {
	dg, err := d.svc.GetByID(ctx, dogID)
	if err != nil {
		return checkins.DogSnapshot{}, err
	}
	return checkins.DogSnapshot{
		Name:    dg.Name,
		OwnerID: dg.OwnerID,
	}, nil
}

func (d dogDirectory) MarkCheckedIn(ctx context.Context, dogID string, at time.Time) error {
	return d.svc.MarkCheckedIn(ctx, dogID, at)
}

func (d dogDirectory) MarkCheckedOut(ctx context.Context, dogID string, at time.Time) error {
	return d.svc.MarkCheckedOut(ctx, dogID, at)
}
