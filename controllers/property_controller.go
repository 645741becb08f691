package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inmobiliaria-api/domain"
	"inmobiliaria-api/dto"
	"inmobiliaria-api/services"
)

// PropertyController maneja los endpoints HTTP de inmuebles
type PropertyController struct {
	service services.PropertyService
}

// NewPropertyController crea una nueva instancia del controlador
func NewPropertyController(service services.PropertyService) *PropertyController {
	return &PropertyController{service: service}
}

// CreateProperty maneja POST /inmuebles
func (ctrl *PropertyController) CreateProperty(c *gin.Context) {
	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Success: false,
			Message: "validation error",
			Errors:  err.Error(),
		})
		return
	}

	property, err := ctrl.service.CreateProperty(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.APIResponse{
		Success: true,
		Message: "Property created successfully",
		Data:    property,
	})
}

// GetPropertyByID maneja GET /inmuebles/:id
func (ctrl *PropertyController) GetPropertyByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	property, err := ctrl.service.GetPropertyByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "Property retrieved successfully",
		Data:    property,
	})
}

// GetAllProperties maneja GET /inmuebles
func (ctrl *PropertyController) GetAllProperties(c *gin.Context) {
	properties, err := ctrl.service.GetAllProperties()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "Properties retrieved successfully",
		Data:    properties,
	})
}

// UpdateProperty maneja PUT /inmuebles/:id
func (ctrl *PropertyController) UpdateProperty(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Success: false,
			Message: "validation error",
			Errors:  err.Error(),
		})
		return
	}

	property, err := ctrl.service.UpdateProperty(id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "Property updated successfully",
		Data:    property,
	})
}

// UpdatePropertyStatus maneja PUT /inmuebles/:id/estado
// Sincroniza el estado comercial cuando un contrato se completa
func (ctrl *PropertyController) UpdatePropertyStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdatePropertyStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Success: false,
			Message: "validation error",
			Errors:  err.Error(),
		})
		return
	}

	if err := ctrl.service.UpdateStatus(id, domain.PropertyStatus(req.Status)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "Property status updated successfully",
	})
}

// CheckDeletable maneja GET /inmuebles/:id/dependencias
// Vista previa de las dependencias que bloquearían el borrado
func (ctrl *PropertyController) CheckDeletable(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reasons, err := ctrl.service.CheckDeletable(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "Dependency check completed",
		Data: gin.H{
			"deletable": len(reasons) == 0,
			"blocking":  reasons,
		},
	})
}

// DeleteProperty maneja DELETE /inmuebles/:id
// Si el inmueble tiene dependencias, la respuesta lista todos los motivos
func (ctrl *PropertyController) DeleteProperty(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.service.DeleteProperty(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "Property deleted successfully",
	})
}
