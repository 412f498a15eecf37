package owners

import "time"

// Owner es un padre/madre registrado. La lista de perros NO se guarda acá:
// Dog.OwnerID es la única fuente de verdad y la vista inversa se calcula
// bajo demanda, así no hay doble escritura que mantener consistente.
type Owner struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string // opcional
	CreatedAt time.Time
}

func (o Owner) FullName() string {
	return o.FirstName + " " + o.LastName
}
