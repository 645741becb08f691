package domain

import "time"

// Sale representa una venta cerrada sobre un inmueble.
// Su existencia bloquea el borrado del inmueble y del cliente.
type Sale struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PropertyID uint      `gorm:"column:inmueble_id;not null;index" json:"inmueble_id"`
	ClientID   uint      `gorm:"column:cliente_id;not null;index" json:"cliente_id"`
	AgentID    *uint     `gorm:"column:agente_id;index" json:"agente_id"`
	Date       time.Time `gorm:"column:fecha;not null" json:"fecha"`
	Price      float64   `gorm:"column:valor;not null" json:"valor"`
	CreatedAt  time.Time `gorm:"column:fecha_creacion" json:"fecha_creacion"`
}

// TableName especifica el nombre de la tabla
func (Sale) TableName() string {
	return "venta"
}
