package checkins

import "context"

type Repository interface {
	Create(ctx context.Context, c CheckIn) error
	Update(ctx context.Context, c CheckIn) error
	GetByID(ctx context.Context, id string) (CheckIn, error)
	List(ctx context.Context) ([]CheckIn, error)
	ListByDog(ctx context.Context, dogID string) ([]CheckIn, error)
	// GetActiveByDog devuelve el check-in activo del perro; a lo sumo
	// existe uno (invariante que protege el service).
	GetActiveByDog(ctx context.Context, dogID string) (CheckIn, error)
	// ListByCaretaker devuelve los check-ins hechos por un empleado,
	// ordenados por CheckInTime descendente, truncados a limit (<=0: sin tope).
	ListByCaretaker(ctx context.Context, employeeID string, limit int) ([]CheckIn, error)
}
