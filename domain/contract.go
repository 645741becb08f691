package domain

import "time"

// ContractType define los tipos de contrato
type ContractType string

const (
	ContractTypeSale   ContractType = "venta"
	ContractTypeRental ContractType = "arriendo"
)

// ContractStatus define los estados del ciclo de vida de un contrato
type ContractStatus string

const (
	ContractStatusDraft     ContractStatus = "borrador"
	ContractStatusActive    ContractStatus = "activo"
	ContractStatusFinished  ContractStatus = "finalizado"
	ContractStatusCancelled ContractStatus = "cancelado"
)

// validTransitions es la ÚNICA tabla de transiciones del sistema.
// La usan tanto la validación como el payload de opciones que se
// devuelve al front, así nunca se desincronizan.
// Un estado sin salidas (finalizado, cancelado) es terminal.
var validTransitions = map[ContractStatus][]ContractStatus{
	ContractStatusDraft:     {ContractStatusActive, ContractStatusCancelled},
	ContractStatusActive:    {ContractStatusFinished, ContractStatusCancelled},
	ContractStatusFinished:  {},
	ContractStatusCancelled: {},
}

// IsValidStatus indica si el valor es un estado conocido
func IsValidStatus(s ContractStatus) bool {
	_, ok := validTransitions[s]
	return ok
}

// ValidTransitions devuelve los estados alcanzables desde un estado dado
func ValidTransitions(from ContractStatus) []ContractStatus {
	transitions := validTransitions[from]
	out := make([]ContractStatus, len(transitions))
	copy(out, transitions)
	return out
}

// CanTransition indica si la transición from -> to está permitida.
// Pedir el mismo estado NO es una transición válida: el mapa nunca
// contiene la arista hacia sí mismo.
func CanTransition(from, to ContractStatus) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal indica si un estado no tiene transiciones de salida
func IsTerminal(s ContractStatus) bool {
	return IsValidStatus(s) && len(validTransitions[s]) == 0
}

// Contract representa un contrato de venta o arriendo sobre un inmueble.
// fecha_fin es obligatoria para arriendos y opcional para ventas
// (NULL = sin límite hacia adelante). Si existe, debe ser estrictamente
// posterior a fecha_inicio.
type Contract struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Type       ContractType   `gorm:"column:tipo;type:varchar(20);not null" json:"tipo"`
	StartDate  time.Time      `gorm:"column:fecha_inicio;not null" json:"fecha_inicio"`
	EndDate    *time.Time     `gorm:"column:fecha_fin" json:"fecha_fin"`
	Value      float64        `gorm:"column:valor;not null" json:"valor"`
	Status     ContractStatus `gorm:"column:estado;type:varchar(20);default:'borrador'" json:"estado"`
	PropertyID uint           `gorm:"column:inmueble_id;not null;index" json:"inmueble_id"`
	ClientID   uint           `gorm:"column:cliente_id;not null;index" json:"cliente_id"`
	AgentID    *uint          `gorm:"column:agente_id;index" json:"agente_id"`
	CreatedAt  time.Time      `gorm:"column:fecha_creacion" json:"fecha_creacion"`
	UpdatedAt  time.Time      `gorm:"column:fecha_actualizacion" json:"fecha_actualizacion"`
}

// TableName especifica el nombre de la tabla
func (Contract) TableName() string {
	return "contrato"
}
