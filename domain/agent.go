package domain

import "time"

// Agent representa un agente comercial de la inmobiliaria
type Agent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"column:nombre;not null" json:"nombre"`
	Email     string    `gorm:"column:email;unique;not null" json:"email"`
	Phone     string    `gorm:"column:telefono" json:"telefono"`
	Active    bool      `gorm:"column:activo;default:true" json:"activo"`
	CreatedAt time.Time `gorm:"column:fecha_creacion" json:"fecha_creacion"`
	UpdatedAt time.Time `gorm:"column:fecha_actualizacion" json:"fecha_actualizacion"`
}

// TableName especifica el nombre de la tabla
func (Agent) TableName() string {
	return "agente"
}
