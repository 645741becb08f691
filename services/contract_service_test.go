package services

import (
	"errors"
	"testing"

	"inmobiliaria-api/domain"
	"inmobiliaria-api/dto"
)

// seedPropertyAndClient crea un inmueble y un cliente de prueba
func seedPropertyAndClient(env *testEnv) (uint, uint) {
	property := &domain.Property{Type: domain.PropertyTypeApartment, Address: "Calle 10 #5-23", City: "Medellín", Price: 350000000}
	env.repos.Properties.Create(property)

	client := &domain.Client{Name: "Laura Gómez", DocumentType: "CC", DocumentNumber: "1020304050", Email: "laura@example.com", Type: domain.ClientTypeTenant}
	env.repos.Clients.Create(client)

	return property.ID, client.ID
}

// Test: crear un contrato de arriendo exitosamente (nace en borrador)
func TestCreateContract_Success(t *testing.T) {
	env := newTestEnv()
	propertyID, clientID := seedPropertyAndClient(env)

	req := dto.CreateContractRequest{
		Type:       "arriendo",
		StartDate:  "2024-01-01",
		EndDate:    "2024-12-31",
		Value:      1500000,
		PropertyID: propertyID,
		ClientID:   clientID,
	}

	contract, err := env.contracts.CreateContract(req)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if contract.Status != domain.ContractStatusDraft {
		t.Errorf("Expected status borrador, got %s", contract.Status)
	}
	if contract.EndDate == nil {
		t.Fatal("Expected end date, got nil")
	}
	if !contract.EndDate.After(contract.StartDate) {
		t.Error("Expected end date after start date")
	}
}

// Test: fecha_fin anterior a fecha_inicio se rechaza en validación,
// nunca llega a la máquina de estados ni a la base
func TestCreateContract_EndBeforeStart(t *testing.T) {
	env := newTestEnv()
	propertyID, clientID := seedPropertyAndClient(env)

	req := dto.CreateContractRequest{
		Type:       "arriendo",
		StartDate:  "2024-01-01",
		EndDate:    "2023-12-31",
		Value:      1500000,
		PropertyID: propertyID,
		ClientID:   clientID,
	}

	contract, err := env.contracts.CreateContract(req)

	if contract != nil {
		t.Error("Expected nil contract")
	}
	var validation *domain.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	if validation.Field != "fecha_fin" {
		t.Errorf("Expected fecha_fin field, got %s", validation.Field)
	}

	contracts, _ := env.contracts.GetAllContracts()
	if len(contracts) != 0 {
		t.Error("Expected no contracts persisted after validation failure")
	}
}

// Test: un arriendo sin fecha_fin se rechaza
func TestCreateContract_RentalRequiresEndDate(t *testing.T) {
	env := newTestEnv()
	propertyID, clientID := seedPropertyAndClient(env)

	req := dto.CreateContractRequest{
		Type:       "arriendo",
		StartDate:  "2024-01-01",
		Value:      1500000,
		PropertyID: propertyID,
		ClientID:   clientID,
	}

	_, err := env.contracts.CreateContract(req)

	var validation *domain.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
}

// Test: una venta sin fecha_fin es válida (intervalo sin límite)
func TestCreateContract_SaleWithoutEndDate(t *testing.T) {
	env := newTestEnv()
	propertyID, clientID := seedPropertyAndClient(env)

	req := dto.CreateContractRequest{
		Type:       "venta",
		StartDate:  "2024-01-01",
		Value:      350000000,
		PropertyID: propertyID,
		ClientID:   clientID,
	}

	contract, err := env.contracts.CreateContract(req)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if contract.EndDate != nil {
		t.Error("Expected nil end date for open-ended sale")
	}
}

// Test: el contrato referencia un inmueble inexistente
func TestCreateContract_PropertyNotFound(t *testing.T) {
	env := newTestEnv()
	_, clientID := seedPropertyAndClient(env)

	req := dto.CreateContractRequest{
		Type:       "venta",
		StartDate:  "2024-01-01",
		Value:      350000000,
		PropertyID: 999,
		ClientID:   clientID,
	}

	_, err := env.contracts.CreateContract(req)

	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

// Test (escenario A): borrador -> activo funciona; activo -> activo falla
func TestChangeStatus_DraftToActive(t *testing.T) {
	env := newTestEnv()
	propertyID, clientID := seedPropertyAndClient(env)

	contract, err := env.contracts.CreateContract(dto.CreateContractRequest{
		Type:       "arriendo",
		StartDate:  "2024-01-01",
		EndDate:    "2024-12-31",
		Value:      1500000,
		PropertyID: propertyID,
		ClientID:   clientID,
	})
	if err != nil {
		t.Fatalf("Expected no error creating contract, got %v", err)
	}

	result, err := env.contracts.ChangeStatus(contract.ID, domain.ContractStatusActive)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.PreviousStatus != "borrador" || result.NewStatus != "activo" {
		t.Errorf("Expected borrador -> activo, got %s -> %s", result.PreviousStatus, result.NewStatus)
	}

	// Pedir el estado actual NO es una transición válida
	_, err = env.contracts.ChangeStatus(contract.ID, domain.ContractStatusActive)
	var invalid *domain.InvalidTransitionError
	if !errors.As(err, &invalid) {
		t.Fatalf("Expected InvalidTransitionError, got %v", err)
	}
	if invalid.Current != domain.ContractStatusActive {
		t.Errorf("Expected current activo, got %s", invalid.Current)
	}
	if invalid.Requested != domain.ContractStatusActive {
		t.Errorf("Expected requested activo, got %s", invalid.Requested)
	}
	if len(invalid.Allowed) != 2 {
		t.Errorf("Expected 2 allowed transitions from activo, got %v", invalid.Allowed)
	}
}

// Test (escenario B): activar un segundo contrato solapado falla con
// conflicto que referencia el ID del primero
func TestChangeStatus_SchedulingConflict(t *testing.T) {
	env := newTestEnv()
	propertyID, clientID := seedPropertyAndClient(env)

	second := &domain.Client{Name: "Carlos Ruiz", DocumentType: "CC", DocumentNumber: "6070809010", Email: "carlos@example.com", Type: domain.ClientTypeTenant}
	env.repos.Clients.Create(second)

	first, _ := env.contracts.CreateContract(dto.CreateContractRequest{
		Type:       "arriendo",
		StartDate:  "2024-01-01",
		EndDate:    "2024-12-31",
		Value:      1500000,
		PropertyID: propertyID,
		ClientID:   clientID,
	})
	if _, err := env.contracts.ChangeStatus(first.ID, domain.ContractStatusActive); err != nil {
		t.Fatalf("Expected no error activating first contract, got %v", err)
	}

	overlapping, _ := env.contracts.CreateContract(dto.CreateContractRequest{
		Type:       "arriendo",
		StartDate:  "2024-06-01",
		EndDate:    "2024-06-30",
		Value:      1600000,
		PropertyID: propertyID,
		ClientID:   second.ID,
	})

	_, err := env.contracts.ChangeStatus(overlapping.ID, domain.ContractStatusActive)

	var conflict *domain.SchedulingConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Expected SchedulingConflictError, got %v", err)
	}
	if conflict.ConflictingContractID != first.ID {
		t.Errorf("Expected conflicting contract %d, got %d", first.ID, conflict.ConflictingContractID)
	}

	// El segundo contrato sigue en borrador
	reloaded, _ := env.contracts.GetContractByID(overlapping.ID)
	if reloaded.Status != domain.ContractStatusDraft {
		t.Errorf("Expected status borrador after rejected activation, got %s", reloaded.Status)
	}
}

// Test: un contrato borrador o finalizado nunca bloquea la activación
func TestChangeStatus_NonActiveNeverConflicts(t *testing.T) {
	env := newTestEnv()
	propertyID, clientID := seedPropertyAndClient(env)

	first, _ := env.contracts.CreateContract(dto.CreateContractRequest{
		Type:       "arriendo",
		StartDate:  "2024-01-01",
		EndDate:    "2024-12-31",
		Value:      1500000,
		PropertyID: propertyID,
		ClientID:   clientID,
	})
	env.contracts.ChangeStatus(first.ID, domain.ContractStatusActive)
	env.contracts.ChangeStatus(first.ID, domain.ContractStatusFinished)

	second, _ := env.contracts.CreateContract(dto.CreateContractRequest{
		Type:       "arriendo",
		StartDate:  "2024-06-01",
		EndDate:    "2025-05-31",
		Value:      1600000,
		PropertyID: propertyID,
		ClientID:   clientID,
	})

	if _, err := env.contracts.ChangeStatus(second.ID, domain.ContractStatusActive); err != nil {
		t.Fatalf("Expected activation to succeed against finished contract, got %v", err)
	}
}

// Test: los estados terminales no admiten ninguna transición
func TestChangeStatus_TerminalStatesNeverChange(t *testing.T) {
	env := newTestEnv()
	propertyID, clientID := seedPropertyAndClient(env)

	contract, _ := env.contracts.CreateContract(dto.CreateContractRequest{
		Type:       "venta",
		StartDate:  "2024-01-01",
		Value:      350000000,
		PropertyID: propertyID,
		ClientID:   clientID,
	})
	env.contracts.ChangeStatus(contract.ID, domain.ContractStatusCancelled)

	targets := []domain.ContractStatus{
		domain.ContractStatusDraft,
		domain.ContractStatusActive,
		domain.ContractStatusFinished,
		domain.ContractStatusCancelled,
	}
	for _, target := range targets {
		_, err := env.contracts.ChangeStatus(contract.ID, target)
		var invalid *domain.InvalidTransitionError
		if !errors.As(err, &invalid) {
			t.Errorf("Expected InvalidTransitionError for cancelado -> %s, got %v", target, err)
		}
	}

	reloaded, _ := env.contracts.GetContractByID(contract.ID)
	if reloaded.Status != domain.ContractStatusCancelled {
		t.Errorf("Expected status cancelado to stay, got %s", reloaded.Status)
	}
}

// Test: repetir la misma transición inválida devuelve el mismo error
// las dos veces, sin ningún cambio de estado
func TestChangeStatus_RejectionIsIdempotent(t *testing.T) {
	env := newTestEnv()
	propertyID, clientID := seedPropertyAndClient(env)

	contract, _ := env.contracts.CreateContract(dto.CreateContractRequest{
		Type:       "venta",
		StartDate:  "2024-01-01",
		Value:      350000000,
		PropertyID: propertyID,
		ClientID:   clientID,
	})

	_, first := env.contracts.ChangeStatus(contract.ID, domain.ContractStatusFinished)
	_, second := env.contracts.ChangeStatus(contract.ID, domain.ContractStatusFinished)

	if first == nil || second == nil {
		t.Fatal("Expected both attempts to fail")
	}
	if first.Error() != second.Error() {
		t.Errorf("Expected identical errors, got %q and %q", first, second)
	}

	reloaded, _ := env.contracts.GetContractByID(contract.ID)
	if reloaded.Status != domain.ContractStatusDraft {
		t.Errorf("Expected status borrador unchanged, got %s", reloaded.Status)
	}
}

// Test: estado desconocido se rechaza antes de abrir la transacción
func TestChangeStatus_UnknownStatus(t *testing.T) {
	env := newTestEnv()

	_, err := env.contracts.ChangeStatus(1, domain.ContractStatus("suspendido"))

	var validation *domain.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
}

// Test: contrato inexistente
func TestChangeStatus_NotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.contracts.ChangeStatus(999, domain.ContractStatusActive)

	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

// Test: actualizar las fechas de un contrato activo re-chequea el solape
// excluyéndose a sí mismo
func TestUpdateContract_ActiveRechecksOverlap(t *testing.T) {
	env := newTestEnv()
	propertyID, clientID := seedPropertyAndClient(env)

	first, _ := env.contracts.CreateContract(dto.CreateContractRequest{
		Type:       "arriendo",
		StartDate:  "2024-01-01",
		EndDate:    "2024-06-30",
		Value:      1500000,
		PropertyID: propertyID,
		ClientID:   clientID,
	})
	env.contracts.ChangeStatus(first.ID, domain.ContractStatusActive)

	second, _ := env.contracts.CreateContract(dto.CreateContractRequest{
		Type:       "arriendo",
		StartDate:  "2024-07-01",
		EndDate:    "2024-12-31",
		Value:      1500000,
		PropertyID: propertyID,
		ClientID:   clientID,
	})
	env.contracts.ChangeStatus(second.ID, domain.ContractStatusActive)

	// Mover el propio rango del primero sin chocar consigo mismo funciona
	updated, err := env.contracts.UpdateContract(first.ID, dto.UpdateContractRequest{EndDate: "2024-05-31"})
	if err != nil {
		t.Fatalf("Expected no error shrinking own range, got %v", err)
	}
	if updated.EndDate == nil || updated.EndDate.Format("2006-01-02") != "2024-05-31" {
		t.Error("Expected end date updated to 2024-05-31")
	}

	// Extenderlo hasta pisar al segundo debe fallar
	_, err = env.contracts.UpdateContract(first.ID, dto.UpdateContractRequest{EndDate: "2024-07-01"})
	var conflict *domain.SchedulingConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Expected SchedulingConflictError, got %v", err)
	}
	if conflict.ConflictingContractID != second.ID {
		t.Errorf("Expected conflict with contract %d, got %d", second.ID, conflict.ConflictingContractID)
	}
}

// Test: un contrato terminal no se puede modificar
func TestUpdateContract_TerminalRejected(t *testing.T) {
	env := newTestEnv()
	propertyID, clientID := seedPropertyAndClient(env)

	contract, _ := env.contracts.CreateContract(dto.CreateContractRequest{
		Type:       "venta",
		StartDate:  "2024-01-01",
		Value:      350000000,
		PropertyID: propertyID,
		ClientID:   clientID,
	})
	env.contracts.ChangeStatus(contract.ID, domain.ContractStatusCancelled)

	_, err := env.contracts.UpdateContract(contract.ID, dto.UpdateContractRequest{Value: 400000000})

	var validation *domain.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
}

// Test: validar un rango candidato reporta el conflicto sin escribir nada
func TestValidateDateRange(t *testing.T) {
	env := newTestEnv()
	propertyID, clientID := seedPropertyAndClient(env)

	contract, _ := env.contracts.CreateContract(dto.CreateContractRequest{
		Type:       "arriendo",
		StartDate:  "2024-01-01",
		EndDate:    "2024-12-31",
		Value:      1500000,
		PropertyID: propertyID,
		ClientID:   clientID,
	})
	env.contracts.ChangeStatus(contract.ID, domain.ContractStatusActive)

	// Rango solapado
	result, err := env.contracts.ValidateDateRange(dto.ValidateDatesRequest{
		PropertyID: propertyID,
		StartDate:  "2024-06-01",
		EndDate:    "2024-06-30",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !result.HasConflict || result.ConflictingContractID != contract.ID {
		t.Errorf("Expected conflict with contract %d, got %+v", contract.ID, result)
	}

	// Rango libre (después del fin del contrato activo)
	result, err = env.contracts.ValidateDateRange(dto.ValidateDatesRequest{
		PropertyID: propertyID,
		StartDate:  "2025-01-01",
		EndDate:    "2025-12-31",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.HasConflict {
		t.Errorf("Expected no conflict, got %+v", result)
	}

	// El propio contrato no se marca a sí mismo como conflicto
	result, err = env.contracts.ValidateDateRange(dto.ValidateDatesRequest{
		PropertyID:        propertyID,
		StartDate:         "2024-06-01",
		EndDate:           "2024-06-30",
		ExcludeContractID: contract.ID,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.HasConflict {
		t.Errorf("Expected no conflict when excluding self, got %+v", result)
	}
}
