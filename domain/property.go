package domain

import "time"

// PropertyType define los tipos de inmueble que maneja la inmobiliaria
type PropertyType string

const (
	PropertyTypeHouse      PropertyType = "casa"
	PropertyTypeApartment  PropertyType = "apartamento"
	PropertyTypeCommercial PropertyType = "local"
	PropertyTypeOffice     PropertyType = "oficina"
	PropertyTypeLot        PropertyType = "lote"
)

// PropertyStatus define los estados comerciales de un inmueble
// El estado lo ajusta la capa que llama al motor cuando un contrato
// se completa; nunca se edita libremente si hay dependencias
type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "disponible"
	PropertyStatusRented    PropertyStatus = "arrendado"
	PropertyStatusSold      PropertyStatus = "vendido"
)

// Property representa un inmueble del inventario
type Property struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Type      PropertyType   `gorm:"column:tipo;type:varchar(20);not null" json:"tipo"`
	Address   string         `gorm:"column:direccion;not null" json:"direccion"`
	City      string         `gorm:"column:ciudad;not null" json:"ciudad"`
	Price     float64        `gorm:"column:precio;not null" json:"precio"`
	Status    PropertyStatus `gorm:"column:estado;type:varchar(20);default:'disponible'" json:"estado"`
	Area      *float64       `gorm:"column:area" json:"area,omitempty"`
	Rooms     *int           `gorm:"column:habitaciones" json:"habitaciones,omitempty"`
	Baths     *int           `gorm:"column:banos" json:"banos,omitempty"`
	Photos    []string       `gorm:"column:fotos;serializer:json" json:"fotos"`
	CreatedAt time.Time      `gorm:"column:fecha_creacion" json:"fecha_creacion"`
	UpdatedAt time.Time      `gorm:"column:fecha_actualizacion" json:"fecha_actualizacion"`
}

// TableName especifica el nombre de la tabla
func (Property) TableName() string {
	return "inmueble"
}
