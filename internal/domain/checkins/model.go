package checkins

import "time"

// ServiceType distingue guardería (mismo día) de hotel (pernocta).
// @Enum daycare, hotel
type ServiceType string

const (
	ServiceDaycare ServiceType = "daycare"
	ServiceHotel   ServiceType = "hotel"
)

func ValidServiceType(t ServiceType) bool {
	return t == ServiceDaycare || t == ServiceHotel
}

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// CheckIn es el registro de una visita. DogName y OwnerName son snapshots
// tomados al momento del check-in: si el perro o el dueño cambian de nombre
// después, estos campos NO se refrescan — son historia "as of check-in".
type CheckIn struct {
	ID    string
	DogID string

	DogName   string
	OwnerName string

	ServiceType ServiceType

	CheckInTime      time.Time
	CheckOutTime     *time.Time
	ExpectedCheckOut *time.Time

	Notes string

	Status Status

	// empleado que realizó el check-in; vacío si nadie se identificó
	CaretakerID string
}
