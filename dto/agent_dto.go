package dto

// CreateAgentRequest representa el request para registrar un agente
type CreateAgentRequest struct {
	Name  string `json:"nombre" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"telefono,omitempty"`
}

// UpdateAgentRequest representa el request para actualizar un agente.
// Active permite desactivar un agente sin borrarlo; los contratos
// históricos conservan la referencia.
type UpdateAgentRequest struct {
	Name   string `json:"nombre,omitempty"`
	Email  string `json:"email,omitempty" binding:"omitempty,email"`
	Phone  string `json:"telefono,omitempty"`
	Active *bool  `json:"activo,omitempty"`
}
