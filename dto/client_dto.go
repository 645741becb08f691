package dto

// CreateClientRequest representa el request para registrar un cliente
type CreateClientRequest struct {
	Name           string `json:"nombre" binding:"required"`
	DocumentType   string `json:"tipo_documento" binding:"required"`
	DocumentNumber string `json:"numero_documento" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"telefono,omitempty"`
	Type           string `json:"tipo" binding:"required,oneof=comprador vendedor arrendatario arrendador"`
}

// UpdateClientRequest representa el request para actualizar un cliente.
// Todos los campos son opcionales.
type UpdateClientRequest struct {
	Name  string `json:"nombre,omitempty"`
	Email string `json:"email,omitempty" binding:"omitempty,email"`
	Phone string `json:"telefono,omitempty"`
	Type  string `json:"tipo,omitempty" binding:"omitempty,oneof=comprador vendedor arrendatario arrendador"`
}
