package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inmobiliaria-api/dto"
	"inmobiliaria-api/services"
)

// ClientController maneja los endpoints HTTP de clientes
type ClientController struct {
	service services.ClientService
}

// NewClientController crea una nueva instancia del controlador
func NewClientController(service services.ClientService) *ClientController {
	return &ClientController{service: service}
}

// CreateClient maneja POST /clientes
func (ctrl *ClientController) CreateClient(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Success: false,
			Message: "validation error",
			Errors:  err.Error(),
		})
		return
	}

	client, err := ctrl.service.CreateClient(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.APIResponse{
		Success: true,
		Message: "Client created successfully",
		Data:    client,
	})
}

// GetClientByID maneja GET /clientes/:id
func (ctrl *ClientController) GetClientByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	client, err := ctrl.service.GetClientByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "Client retrieved successfully",
		Data:    client,
	})
}

// GetAllClients maneja GET /clientes
func (ctrl *ClientController) GetAllClients(c *gin.Context) {
	clients, err := ctrl.service.GetAllClients()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "Clients retrieved successfully",
		Data:    clients,
	})
}

// UpdateClient maneja PUT /clientes/:id
func (ctrl *ClientController) UpdateClient(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Success: false,
			Message: "validation error",
			Errors:  err.Error(),
		})
		return
	}

	client, err := ctrl.service.UpdateClient(id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "Client updated successfully",
		Data:    client,
	})
}

// CheckDeletable maneja GET /clientes/:id/dependencias
func (ctrl *ClientController) CheckDeletable(c *gin.Context) {
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

// DeleteClient maneja DELETE /clientes/:id
func (ctrl *ClientController) DeleteClient(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.service.DeleteClient(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "Client deleted successfully",
	})
}
