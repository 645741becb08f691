package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inmobiliaria-api/dto"
	"inmobiliaria-api/services"
)

// AgentController maneja los endpoints HTTP de agentes
type AgentController struct {
	service services.AgentService
}

// NewAgentController crea una nueva instancia del controlador
func NewAgentController(service services.AgentService) *AgentController {
	return &AgentController{service: service}
}

// CreateAgent maneja POST /agentes
func (ctrl *AgentController) CreateAgent(c *gin.Context) {
	var req dto.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Success: false,
			Message: "validation error",
			Errors:  err.Error(),
		})
		return
	}

	agent, err := ctrl.service.CreateAgent(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.APIResponse{
		Success: true,
		Message: "Agent created successfully",
		Data:    agent,
	})
}

// GetAgentByID maneja GET /agentes/:id
func (ctrl *AgentController) GetAgentByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	agent, err := ctrl.service.GetAgentByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "Agent retrieved successfully",
		Data:    agent,
	})
}

// GetAllAgents maneja GET /agentes
func (ctrl *AgentController) GetAllAgents(c *gin.Context) {
	agents, err := ctrl.service.GetAllAgents()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "Agents retrieved successfully",
		Data:    agents,
	})
}

// UpdateAgent maneja PUT /agentes/:id
func (ctrl *AgentController) UpdateAgent(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Success: false,
			Message: "validation error",
			Errors:  err.Error(),
		})
		return
	}

	agent, err := ctrl.service.UpdateAgent(id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "Agent updated successfully",
		Data:    agent,
	})
}
