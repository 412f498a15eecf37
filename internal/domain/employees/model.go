package employees

import "time"

// Role define los roles del personal.
// @Enum caretaker, admin, groomer, trainer
type Role string

const (
	RoleCaretaker Role = "caretaker"
	RoleAdmin     Role = "admin"
	RoleGroomer   Role = "groomer"
	RoleTrainer   Role = "trainer"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleCaretaker, RoleAdmin, RoleGroomer, RoleTrainer:
		return true
	}
	return false
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Employee es un miembro del personal. AssignedDogIDs solo tiene sentido
// para caretakers y conserva el orden de asignación; un id que ya no exista
// en el store de perros simplemente se saltea al resolver.
type Employee struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string // opcional
	Role      Role
	Status    Status
	HireDate  time.Time
	Photo     string // opcional

	AssignedDogIDs []string

	CreatedAt time.Time
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
