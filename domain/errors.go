package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indica que la entidad referenciada no existe
var ErrNotFound = errors.New("entity not found")

// ValidationError indica un campo inválido o faltante, detectado
// antes de que la petición llegue al motor
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// InvalidTransitionError indica que el estado pedido no es alcanzable
// desde el estado actual del contrato. Incluye el conjunto permitido
// para que el front pueda re-renderizar las opciones.
type InvalidTransitionError struct {
	Current   ContractStatus
	Requested ContractStatus
	Allowed   []ContractStatus
}

func (e *InvalidTransitionError) Error() string {
	allowed := make([]string, len(e.Allowed))
	for i, s := range e.Allowed {
		allowed[i] = string(s)
	}
	return fmt.Sprintf("invalid transition from %s to %s (allowed: %s)",
		e.Current, e.Requested, strings.Join(allowed, ", "))
}

// SchedulingConflictError indica que el rango de fechas pedido se solapa
// con otro contrato activo sobre el mismo inmueble
type SchedulingConflictError struct {
	PropertyID            uint
	ConflictingContractID uint
}

func (e *SchedulingConflictError) Error() string {
	return fmt.Sprintf("date range overlaps active contract %d on property %d",
		e.ConflictingContractID, e.PropertyID)
}

// DependencyBlockedError indica que el borrado se rechazó porque existen
// registros dependientes. Reasons trae una descripción por cada tabla
// con registros, todas juntas, no solo la primera encontrada.
type DependencyBlockedError struct {
	Entity   string
	EntityID uint
	Reasons  []string
}

func (e *DependencyBlockedError) Error() string {
	return fmt.Sprintf("%s %d cannot be deleted: %s",
		e.Entity, e.EntityID, strings.Join(e.Reasons, ", "))
}
