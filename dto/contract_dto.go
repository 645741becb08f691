package dto

// Las fechas viajan como string "YYYY-MM-DD"; el servicio las parsea y
// valida. La granularidad del sistema es el día completo.

// CreateContractRequest representa el request para crear un contrato.
// El contrato siempre nace en estado borrador.
type CreateContractRequest struct {
	Type       string  `json:"tipo" binding:"required,oneof=venta arriendo"`
	StartDate  string  `json:"fecha_inicio" binding:"required"`
	EndDate    string  `json:"fecha_fin,omitempty"`
	Value      float64 `json:"valor" binding:"required,gt=0"`
	PropertyID uint    `json:"inmueble_id" binding:"required"`
	ClientID   uint    `json:"cliente_id" binding:"required"`
	AgentID    *uint   `json:"agente_id,omitempty"`
}

// UpdateContractRequest representa el request para actualizar un contrato.
// Todos los campos son opcionales; el estado NO se toca por acá, solo
// por el endpoint de cambio de estado.
type UpdateContractRequest struct {
	StartDate string  `json:"fecha_inicio,omitempty"`
	EndDate   string  `json:"fecha_fin,omitempty"`
	Value     float64 `json:"valor,omitempty" binding:"omitempty,gt=0"`
	AgentID   *uint   `json:"agente_id,omitempty"`
}

// ChangeStatusRequest representa el request para cambiar el estado de un contrato
type ChangeStatusRequest struct {
	Status string `json:"estado" binding:"required"`
}

// ValidateDatesRequest representa el request para validar un rango de
// fechas candidato contra los contratos activos de un inmueble.
// ExcludeContractID permite chequear una actualización sin que el
// contrato se marque a sí mismo como conflicto.
type ValidateDatesRequest struct {
	PropertyID        uint   `json:"inmueble_id" binding:"required"`
	StartDate         string `json:"fecha_inicio" binding:"required"`
	EndDate           string `json:"fecha_fin,omitempty"`
	ExcludeContractID uint   `json:"excluir_contrato_id,omitempty"`
}
