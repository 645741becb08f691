package services

import (
	"fmt"
	"time"

	"inmobiliaria-api/domain"
	"inmobiliaria-api/dto"
	"inmobiliaria-api/publishers"
	"inmobiliaria-api/repositories"
)

// dateLayout es el formato de fecha de toda la API; la granularidad del
// sistema es el día completo
const dateLayout = "2006-01-02"

// ContractService define las operaciones sobre contratos: alta,
// actualización, máquina de estados y validación de rangos de fechas
type ContractService interface {
	CreateContract(req dto.CreateContractRequest) (*domain.Contract, error)
	UpdateContract(id uint, req dto.UpdateContractRequest) (*domain.Contract, error)
	ChangeStatus(contractID uint, target domain.ContractStatus) (*dto.StatusChangeResult, error)
	ValidateDateRange(req dto.ValidateDatesRequest) (*dto.ConflictCheckData, error)
	GetContractByID(id uint) (*domain.Contract, error)
	GetAllContracts() ([]domain.Contract, error)
}

type contractService struct {
	txManager repositories.TxManager
	repos     *repositories.Repositories
	publisher publishers.EventPublisher
	audit     repositories.AuditRepository
}

// NewContractService crea una nueva instancia del servicio
func NewContractService(txManager repositories.TxManager, repos *repositories.Repositories, publisher publishers.EventPublisher, audit repositories.AuditRepository) ContractService {
	return &contractService{
		txManager: txManager,
		repos:     repos,
		publisher: publisher,
		audit:     audit,
	}
}

// parseDate parsea una fecha "YYYY-MM-DD" del request
func parseDate(field, value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, &domain.ValidationError{Field: field, Reason: "must be a date in YYYY-MM-DD format"}
	}
	return parsed, nil
}

// CreateContract crea un contrato nuevo, siempre en estado borrador.
// Las validaciones de fechas corren antes de tocar el motor: un rango
// inválido nunca llega a la máquina de estados.
func (s *contractService) CreateContract(req dto.CreateContractRequest) (*domain.Contract, error) {
	// 1. Parsear y validar las fechas
	start, err := parseDate("fecha_inicio", req.StartDate)
	if err != nil {
		return nil, err
	}

	var end *time.Time
	if req.EndDate != "" {
		parsed, err := parseDate("fecha_fin", req.EndDate)
		if err != nil {
			return nil, err
		}
		end = &parsed
	}

	// 2. fecha_fin es obligatoria para arriendos y, si existe, debe ser
	// estrictamente posterior a fecha_inicio
	contractType := domain.ContractType(req.Type)
	if contractType == domain.ContractTypeRental && end == nil {
		return nil, &domain.ValidationError{Field: "fecha_fin", Reason: "required for rental contracts"}
	}
	if end != nil && !end.After(start) {
		return nil, &domain.ValidationError{Field: "fecha_fin", Reason: "must be strictly after fecha_inicio"}
	}

	// 3. Crear dentro de una transacción: las FKs se re-validan acá,
	// no contra lecturas viejas del caller
	contract := &domain.Contract{
		Type:       contractType,
		StartDate:  start,
		EndDate:    end,
		Value:      req.Value,
		Status:     domain.ContractStatusDraft,
		PropertyID: req.PropertyID,
		ClientID:   req.ClientID,
		AgentID:    req.AgentID,
	}

	err = s.txManager.InTransaction(func(repos *repositories.Repositories) error {
		if _, err := repos.Properties.GetByID(req.PropertyID); err != nil {
			return fmt.Errorf("inmueble %d: %w", req.PropertyID, err)
		}
		if _, err := repos.Clients.GetByID(req.ClientID); err != nil {
			return fmt.Errorf("cliente %d: %w", req.ClientID, err)
		}
		if req.AgentID != nil {
			if _, err := repos.Agents.GetByID(*req.AgentID); err != nil {
				return fmt.Errorf("agente %d: %w", *req.AgentID, err)
			}
		}
		return repos.Contracts.Create(contract)
	})
	if err != nil {
		return nil, err
	}

	// 4. Notificar después del commit (best-effort)
	s.publisher.Publish("create", "contrato", contract.ID)

	return contract, nil
}

// UpdateContract actualiza fechas, valor o agente de un contrato.
// Si el contrato está activo, el nuevo rango se re-chequea contra los
// demás contratos activos del inmueble (excluyéndose a sí mismo).
func (s *contractService) UpdateContract(id uint, req dto.UpdateContractRequest) (*domain.Contract, error) {
	var updated *domain.Contract

	err := s.txManager.InTransaction(func(repos *repositories.Repositories) error {
		// 1. El contrato debe existir y no estar en un estado terminal
		contract, err := repos.Contracts.GetByID(id)
		if err != nil {
			return err
		}
		if domain.IsTerminal(contract.Status) {
			return &domain.ValidationError{Field: "estado", Reason: fmt.Sprintf("a %s contract cannot be modified", contract.Status)}
		}

		// 2. Aplicar los cambios pedidos
		if req.StartDate != "" {
			start, err := parseDate("fecha_inicio", req.StartDate)
			if err != nil {
				return err
			}
			contract.StartDate = start
		}
		if req.EndDate != "" {
			end, err := parseDate("fecha_fin", req.EndDate)
			if err != nil {
				return err
			}
			contract.EndDate = &end
		}
		if req.Value > 0 {
			contract.Value = req.Value
		}
		if req.AgentID != nil {
			if _, err := repos.Agents.GetByID(*req.AgentID); err != nil {
				return fmt.Errorf("agente %d: %w", *req.AgentID, err)
			}
			contract.AgentID = req.AgentID
		}

		// 3. Re-validar el rango resultante
		if contract.EndDate != nil && !contract.EndDate.After(contract.StartDate) {
			return &domain.ValidationError{Field: "fecha_fin", Reason: "must be strictly after fecha_inicio"}
		}

		// 4. Un contrato activo no puede quedar solapado con otro activo
		if contract.Status == domain.ContractStatusActive {
			conflict, err := repos.Contracts.FindActiveOverlap(contract.PropertyID, contract.StartDate, contract.EndDate, contract.ID)
			if err != nil {
				return err
			}
			if conflict != nil {
				return &domain.SchedulingConflictError{
					PropertyID:            contract.PropertyID,
					ConflictingContractID: conflict.ID,
				}
			}
		}

		// 5. Persistir
		if err := repos.Contracts.Update(contract); err != nil {
			return err
		}
		updated = contract
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish("update", "contrato", updated.ID)

	return updated, nil
}

// ChangeStatus aplica una transición de estado al contrato. Toda la
// operación (lectura, validación de la transición, chequeo de solape y
// escritura) corre en una sola transacción: frente a dos requests
// concurrentes solo una puede activar el contrato.
func (s *contractService) ChangeStatus(contractID uint, target domain.ContractStatus) (*dto.StatusChangeResult, error) {
	// 1. El estado pedido debe ser un valor conocido del ciclo de vida
	if !domain.IsValidStatus(target) {
		return nil, &domain.ValidationError{Field: "estado", Reason: fmt.Sprintf("unknown status %q", target)}
	}

	var result *dto.StatusChangeResult

	err := s.txManager.InTransaction(func(repos *repositories.Repositories) error {
		// 2. El contrato debe existir
		contract, err := repos.Contracts.GetByID(contractID)
		if err != nil {
			return err
		}

		// 3. La transición debe estar en la tabla. Pedir el estado actual
		// también se rechaza: el mismo estado no es una transición válida.
		if !domain.CanTransition(contract.Status, target) {
			return &domain.InvalidTransitionError{
				Current:   contract.Status,
				Requested: target,
				Allowed:   domain.ValidTransitions(contract.Status),
			}
		}

		// 4. Activar exige que no exista otro contrato activo solapado
		// sobre el mismo inmueble
		if target == domain.ContractStatusActive {
			conflict, err := repos.Contracts.FindActiveOverlap(contract.PropertyID, contract.StartDate, contract.EndDate, contract.ID)
			if err != nil {
				return err
			}
			if conflict != nil {
				return &domain.SchedulingConflictError{
					PropertyID:            contract.PropertyID,
					ConflictingContractID: conflict.ID,
				}
			}
		}

		// 5. Persistir el nuevo estado y el timestamp de actualización
		previous := contract.Status
		if err := repos.Contracts.UpdateStatus(contract.ID, target); err != nil {
			return err
		}

		result = &dto.StatusChangeResult{
			PreviousStatus: string(previous),
			NewStatus:      string(target),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 6. Notificaciones post-commit (best-effort): el consumidor
	// sincroniza el estado comercial del inmueble con este evento
	s.publisher.Publish("status_changed", "contrato", contractID)
	recordAudit(s.audit, "contrato", contractID, "status_changed",
		fmt.Sprintf("%s -> %s", result.PreviousStatus, result.NewStatus))

	return result, nil
}

// ValidateDateRange chequea un rango de fechas candidato contra los
// contratos activos del inmueble, sin escribir nada. Usa exactamente la
// misma consulta que la activación, así los dos caminos no pueden divergir.
func (s *contractService) ValidateDateRange(req dto.ValidateDatesRequest) (*dto.ConflictCheckData, error) {
	start, err := parseDate("fecha_inicio", req.StartDate)
	if err != nil {
		return nil, err
	}

	var end *time.Time
	if req.EndDate != "" {
		parsed, err := parseDate("fecha_fin", req.EndDate)
		if err != nil {
			return nil, err
		}
		if !parsed.After(start) {
			return nil, &domain.ValidationError{Field: "fecha_fin", Reason: "must be strictly after fecha_inicio"}
		}
		end = &parsed
	}

	conflict, err := s.repos.Contracts.FindActiveOverlap(req.PropertyID, start, end, req.ExcludeContractID)
	if err != nil {
		return nil, err
	}

	if conflict == nil {
		return &dto.ConflictCheckData{HasConflict: false}, nil
	}
	return &dto.ConflictCheckData{
		HasConflict:           true,
		ConflictingContractID: conflict.ID,
	}, nil
}

// GetContractByID obtiene un contrato por su ID
func (s *contractService) GetContractByID(id uint) (*domain.Contract, error) {
	return s.repos.Contracts.GetByID(id)
}

// GetAllContracts obtiene todos los contratos
func (s *contractService) GetAllContracts() ([]domain.Contract, error) {
	return s.repos.Contracts.GetAll()
}
