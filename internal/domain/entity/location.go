package entity

import "time"

// Location representa un negocio o sucursal dueño de un inventario detallado.
type Location struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Email     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LocationPatch actualización parcial explícita de un negocio.
type LocationPatch struct {
	Name    *string
	Address *string
	Phone   *string
	Email   *string
}
