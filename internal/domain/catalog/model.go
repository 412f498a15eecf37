package catalog

import "time"

// Type clasifica los servicios del catálogo.
// @Enum daycare, hotel, grooming, training
type Type string

const (
	TypeDaycare  Type = "daycare"
	TypeHotel    Type = "hotel"
	TypeGrooming Type = "grooming"
	TypeTraining Type = "training"
)

func ValidType(t Type) bool {
	switch t {
	case TypeDaycare, TypeHotel, TypeGrooming, TypeTraining:
		return true
	}
	return false
}

// Service es una entrada del catálogo (precio en la moneda local).
type Service struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Type        Type
	Duration    string // etiqueta libre, p.ej. "día completo"
	CreatedAt   time.Time
}
