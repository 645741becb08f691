package dto

// CreatePropertyRequest representa el request para registrar un inmueble
type CreatePropertyRequest struct {
	Type    string   `json:"tipo" binding:"required,oneof=casa apartamento local oficina lote"`
	Address string   `json:"direccion" binding:"required"`
	City    string   `json:"ciudad" binding:"required"`
	Price   float64  `json:"precio" binding:"required,gt=0"`
	Area    *float64 `json:"area,omitempty" binding:"omitempty,gt=0"`
	Rooms   *int     `json:"habitaciones,omitempty" binding:"omitempty,gte=0"`
	Baths   *int     `json:"banos,omitempty" binding:"omitempty,gte=0"`
	Photos  []string `json:"fotos,omitempty"`
}

// UpdatePropertyRequest representa el request para actualizar un inmueble.
// Todos los campos son opcionales. El estado comercial no se edita por
// acá: lo ajusta la capa que llama cuando un contrato se completa.
type UpdatePropertyRequest struct {
	Address string   `json:"direccion,omitempty"`
	City    string   `json:"ciudad,omitempty"`
	Price   float64  `json:"precio,omitempty" binding:"omitempty,gt=0"`
	Area    *float64 `json:"area,omitempty" binding:"omitempty,gt=0"`
	Rooms   *int     `json:"habitaciones,omitempty" binding:"omitempty,gte=0"`
	Baths   *int     `json:"banos,omitempty" binding:"omitempty,gte=0"`
	Photos  []string `json:"fotos,omitempty"`
}

// UpdatePropertyStatusRequest representa el request para sincronizar el
// estado comercial del inmueble (disponible/arrendado/vendido)
type UpdatePropertyStatusRequest struct {
	Status string `json:"estado" binding:"required,oneof=disponible arrendado vendido"`
}
