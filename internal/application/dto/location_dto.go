package dto

import "time"

// CreateLocationRequest body para crear un negocio.
type CreateLocationRequest struct {
	Name    string `json:"nombre"`
	Address string `json:"direccion,omitempty"`
	Phone   string `json:"telefono,omitempty"`
	Email   string `json:"email,omitempty"`
}

// UpdateLocationRequest actualización parcial de un negocio.
type UpdateLocationRequest struct {
	Name    *string `json:"nombre,omitempty"`
	Address *string `json:"direccion,omitempty"`
	Phone   *string `json:"telefono,omitempty"`
	Email   *string `json:"email,omitempty"`
}

// LocationResponse representación de un negocio.
type LocationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	Address   string    `json:"direccion,omitempty"`
	Phone     string    `json:"telefono,omitempty"`
	Email     string    `json:"email,omitempty"`
	Active    bool      `json:"activo"`
	CreatedAt time.Time `json:"fecha_creacion"`
	UpdatedAt time.Time `json:"fecha_actualizacion"`
}
