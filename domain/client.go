package domain

import "time"

// ClientType define el rol comercial del cliente
type ClientType string

const (
	ClientTypeBuyer    ClientType = "comprador"
	ClientTypeSeller   ClientType = "vendedor"
	ClientTypeTenant   ClientType = "arrendatario"
	ClientTypeLandlord ClientType = "arrendador"
)

// Client representa un cliente de la inmobiliaria
// El par tipo+número de documento es único, igual que el email
type Client struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Name           string     `gorm:"column:nombre;not null" json:"nombre"`
	DocumentType   string     `gorm:"column:tipo_documento;not null;uniqueIndex:idx_cliente_documento" json:"tipo_documento"`
	DocumentNumber string     `gorm:"column:numero_documento;not null;uniqueIndex:idx_cliente_documento" json:"numero_documento"`
	Email          string     `gorm:"column:email;unique;not null" json:"email"`
	Phone          string     `gorm:"column:telefono" json:"telefono"`
	Type           ClientType `gorm:"column:tipo;type:varchar(20)" json:"tipo"`
	CreatedAt      time.Time  `gorm:"column:fecha_creacion" json:"fecha_creacion"`
	UpdatedAt      time.Time  `gorm:"column:fecha_actualizacion" json:"fecha_actualizacion"`
}

// TableName especifica el nombre de la tabla
func (Client) TableName() string {
	return "cliente"
}
