package dto

// APIResponse es el sobre estándar de todas las respuestas de la API.
// Los fallos de reglas de negocio (transición inválida, conflicto de
// fechas, borrado bloqueado) son resultados esperados: viajan en este
// mismo sobre con success=false, nunca como errores sin manejar.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Errors  interface{} `json:"errors,omitempty"`
}

// StatusChangeData acompaña los rechazos de cambio de estado para que
// el front pueda re-renderizar las opciones válidas
type StatusChangeData struct {
	CurrentStatus    string   `json:"current_status"`
	RequestedStatus  string   `json:"requested_status"`
	ValidTransitions []string `json:"valid_transitions"`
}

// StatusChangeResult es el resultado de un cambio de estado exitoso
type StatusChangeResult struct {
	PreviousStatus string `json:"estado_anterior"`
	NewStatus      string `json:"estado_nuevo"`
}

// DeleteBlockedData acompaña los borrados rechazados con la lista de
// dependencias que los bloquean
type DeleteBlockedData struct {
	Blocking []string `json:"blocking"`
}

// ConflictCheckData es el resultado de validar un rango de fechas candidato
type ConflictCheckData struct {
	HasConflict           bool `json:"has_conflict"`
	ConflictingContractID uint `json:"conflicting_contract_id,omitempty"`
}
