package dogs

import "time"

// Status es el estado operativo del perro dentro de la guardería.
// @Enum checked-in, checked-out, reserved
type Status string

const (
	StatusCheckedIn  Status = "checked-in"
	StatusCheckedOut Status = "checked-out"
	StatusReserved   Status = "reserved"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusCheckedIn, StatusCheckedOut, StatusReserved:
		return true
	}
	return false
}

// Vaccines son las vacunas básicas que se marcan en la ficha.
type Vaccines struct {
	Rabies      bool `json:"rabies"`
	Bordetella  bool `json:"bordetella"`
	Distemper   bool `json:"distemper"`
	Parvovirus  bool `json:"parvovirus"`
}

type Medication struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
}

// Medical es la ficha médica del perro. Medications conserva el orden
// en que se registraron.
type Medical struct {
	Vaccines    Vaccines     `json:"vaccines"`
	Dewormed    bool         `json:"dewormed"`
	Allergies   string       `json:"allergies"`
	Medications []Medication `json:"medications"`
	Notes       string       `json:"notes"`
	Limitations string       `json:"limitations"`
}

// Dog es el registro de un perrihijo. OwnerID es la única fuente de verdad
// de la relación dueño-perro; la lista inversa se calcula, no se guarda.
type Dog struct {
	ID      string
	Name    string
	Breed   string
	Age     int     // años
	Weight  float64 // kg
	Photo   string  // opcional
	OwnerID string

	Status       Status
	CheckInTime  *time.Time
	CheckOutTime *time.Time

	Medical Medical

	CreatedAt time.Time
}
