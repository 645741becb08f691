package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"inmobiliaria-api/domain"
	"inmobiliaria-api/dto"
)

// respondError traduce los errores del motor al sobre estándar.
// Los fallos de reglas de negocio son resultados esperados y viajan con
// su detalle; un fallo de persistencia se loguea completo del lado del
// servidor y al cliente solo le llega un mensaje genérico.
func respondError(c *gin.Context, err error) {
	var invalidTransition *domain.InvalidTransitionError
	var conflict *domain.SchedulingConflictError
	var blocked *domain.DependencyBlockedError
	var validation *domain.ValidationError

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.APIResponse{
			Success: false,
			Message: err.Error(),
		})

	case errors.As(err, &invalidTransition):
		transitions := make([]string, len(invalidTransition.Allowed))
		for i, s := range invalidTransition.Allowed {
			transitions[i] = string(s)
		}
		c.JSON(http.StatusConflict, dto.APIResponse{
			Success: false,
			Message: err.Error(),
			Data: dto.StatusChangeData{
				CurrentStatus:    string(invalidTransition.Current),
				RequestedStatus:  string(invalidTransition.Requested),
				ValidTransitions: transitions,
			},
		})

	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, dto.APIResponse{
			Success: false,
			Message: err.Error(),
			Data: dto.ConflictCheckData{
				HasConflict:           true,
				ConflictingContractID: conflict.ConflictingContractID,
			},
		})

	case errors.As(err, &blocked):
		c.JSON(http.StatusConflict, dto.APIResponse{
			Success: false,
			Message: err.Error(),
			Data: dto.DeleteBlockedData{
				Blocking: blocked.Reasons,
			},
		})

	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Success: false,
			Message: err.Error(),
			Errors:  gin.H{validation.Field: validation.Reason},
		})

	default:
		log.Printf("Persistence error: %v", err)
		c.JSON(http.StatusInternalServerError, dto.APIResponse{
			Success: false,
			Message: "internal error",
		})
	}
}
