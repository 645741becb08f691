package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"inmobiliaria-api/domain"
	"inmobiliaria-api/dto"
	"inmobiliaria-api/services"
)

// ContractController maneja los endpoints HTTP de contratos
type ContractController struct {
	service services.ContractService
}

// NewContractController crea una nueva instancia del controlador
func NewContractController(service services.ContractService) *ContractController {
	return &ContractController{service: service}
}

// parseIDParam convierte el parámetro :id de la URL
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Success: false,
			Message: "invalid id",
		})
		return 0, false
	}
	return uint(id), true
}

// CreateContract maneja POST /contratos
// El contrato nace en estado borrador
func (ctrl *ContractController) CreateContract(c *gin.Context) {
	// 1. Leer el JSON del body
	var req dto.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Success: false,
			Message: "validation error",
			Errors:  err.Error(),
		})
		return
	}

	// 2. Llamar al servicio para crear el contrato
	contract, err := ctrl.service.CreateContract(req)
	if err != nil {
		respondError(c, err)
		return
	}

	// 3. Devolver el contrato creado
	c.JSON(http.StatusCreated, dto.APIResponse{
		Success: true,
		Message: "Contract created successfully",
		Data:    contract,
	})
}

// UpdateContract maneja PUT /contratos/:id
func (ctrl *ContractController) UpdateContract(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Success: false,
			Message: "validation error",
			Errors:  err.Error(),
		})
		return
	}

	contract, err := ctrl.service.UpdateContract(id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "Contract updated successfully",
		Data:    contract,
	})
}

// ChangeStatus maneja PUT /contratos/:id/estado
// Si la transición es inválida, la respuesta incluye el estado actual,
// el pedido y las transiciones válidas para que el front re-renderice
func (ctrl *ContractController) ChangeStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Success: false,
			Message: "validation error",
			Errors:  err.Error(),
		})
		return
	}

	result, err := ctrl.service.ChangeStatus(id, domain.ContractStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "Contract status changed successfully",
		Data:    result,
	})
}

// ValidateDates maneja POST /contratos/validar-fechas
// Chequea un rango candidato sin escribir nada
func (ctrl *ContractController) ValidateDates(c *gin.Context) {
	var req dto.ValidateDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Success: false,
			Message: "validation error",
			Errors:  err.Error(),
		})
		return
	}

	result, err := ctrl.service.ValidateDateRange(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "Date range validated",
		Data:    result,
	})
}

// GetContractByID maneja GET /contratos/:id
func (ctrl *ContractController) GetContractByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	contract, err := ctrl.service.GetContractByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "Contract retrieved successfully",
		Data:    contract,
	})
}

// GetAllContracts maneja GET /contratos
func (ctrl *ContractController) GetAllContracts(c *gin.Context) {
	contracts, err := ctrl.service.GetAllContracts()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "Contracts retrieved successfully",
		Data:    contracts,
	})
}
