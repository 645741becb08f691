package domain

import "time"

// Visit representa una visita agendada de un cliente a un inmueble.
// Su existencia bloquea el borrado del inmueble y del cliente.
type Visit struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PropertyID uint      `gorm:"column:inmueble_id;not null;index" json:"inmueble_id"`
	ClientID   uint      `gorm:"column:cliente_id;not null;index" json:"cliente_id"`
	AgentID    *uint     `gorm:"column:agente_id;index" json:"agente_id"`
	Date       time.Time `gorm:"column:fecha;not null" json:"fecha"`
	Notes      string    `gorm:"column:observaciones" json:"observaciones"`
	CreatedAt  time.Time `gorm:"column:fecha_creacion" json:"fecha_creacion"`
}

// TableName especifica el nombre de la tabla
func (Visit) TableName() string {
	return "visita"
}
