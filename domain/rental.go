package domain

import "time"

// Rental representa un arriendo vigente o histórico sobre un inmueble.
// Su existencia bloquea el borrado del inmueble y del cliente.
type Rental struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	PropertyID  uint       `gorm:"column:inmueble_id;not null;index" json:"inmueble_id"`
	ClientID    uint       `gorm:"column:cliente_id;not null;index" json:"cliente_id"`
	AgentID     *uint      `gorm:"column:agente_id;index" json:"agente_id"`
	StartDate   time.Time  `gorm:"column:fecha_inicio;not null" json:"fecha_inicio"`
	EndDate     *time.Time `gorm:"column:fecha_fin" json:"fecha_fin"`
	MonthlyRent float64    `gorm:"column:canon_mensual;not null" json:"canon_mensual"`
	CreatedAt   time.Time  `gorm:"column:fecha_creacion" json:"fecha_creacion"`
}

// TableName especifica el nombre de la tabla
func (Rental) TableName() string {
	return "arriendo"
}
