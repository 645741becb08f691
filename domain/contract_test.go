package domain

import "testing"

// Test: la tabla de transiciones completa, caso por caso
func TestCanTransition(t *testing.T) {
	cases := []struct {
		from    ContractStatus
		to      ContractStatus
		allowed bool
	}{
		{ContractStatusDraft, ContractStatusActive, true},
		{ContractStatusDraft, ContractStatusCancelled, true},
		{ContractStatusDraft, ContractStatusFinished, false},
		{ContractStatusDraft, ContractStatusDraft, false},
		{ContractStatusActive, ContractStatusFinished, true},
		{ContractStatusActive, ContractStatusCancelled, true},
		{ContractStatusActive, ContractStatusDraft, false},
		{ContractStatusActive, ContractStatusActive, false},
		{ContractStatusFinished, ContractStatusActive, false},
		{ContractStatusFinished, ContractStatusCancelled, false},
		{ContractStatusFinished, ContractStatusFinished, false},
		{ContractStatusCancelled, ContractStatusActive, false},
		{ContractStatusCancelled, ContractStatusDraft, false},
		{ContractStatusCancelled, ContractStatusCancelled, false},
	}

	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.allowed {
			t.Errorf("CanTransition(%s, %s) = %v, expected %v", c.from, c.to, got, c.allowed)
		}
	}
}

// Test: los estados terminales no tienen salidas
func TestIsTerminal(t *testing.T) {
	if !IsTerminal(ContractStatusFinished) {
		t.Error("Expected finalizado to be terminal")
	}
	if !IsTerminal(ContractStatusCancelled) {
		t.Error("Expected cancelado to be terminal")
	}
	if IsTerminal(ContractStatusDraft) {
		t.Error("Expected borrador not to be terminal")
	}
	if IsTerminal(ContractStatusActive) {
		t.Error("Expected activo not to be terminal")
	}
	// Un estado desconocido no es terminal, es inválido
	if IsTerminal(ContractStatus("pendiente")) {
		t.Error("Expected unknown status not to be terminal")
	}
}

// Test: ValidTransitions devuelve el conjunto permitido sin exponer el mapa interno
func TestValidTransitions(t *testing.T) {
	transitions := ValidTransitions(ContractStatusDraft)
	if len(transitions) != 2 {
		t.Fatalf("Expected 2 transitions from borrador, got %d", len(transitions))
	}
	if transitions[0] != ContractStatusActive || transitions[1] != ContractStatusCancelled {
		t.Errorf("Unexpected transitions from borrador: %v", transitions)
	}

	// Mutar la copia devuelta no debe tocar la tabla
	transitions[0] = ContractStatusFinished
	if CanTransition(ContractStatusDraft, ContractStatusFinished) {
		t.Error("Mutating the returned slice must not alter the transition table")
	}

	if len(ValidTransitions(ContractStatusFinished)) != 0 {
		t.Error("Expected no transitions from finalizado")
	}
	if len(ValidTransitions(ContractStatusCancelled)) != 0 {
		t.Error("Expected no transitions from cancelado")
	}
}

// Test: solo los cuatro estados del ciclo de vida son válidos
func TestIsValidStatus(t *testing.T) {
	valid := []ContractStatus{
		ContractStatusDraft,
		ContractStatusActive,
		ContractStatusFinished,
		ContractStatusCancelled,
	}
	for _, s := range valid {
		if !IsValidStatus(s) {
			t.Errorf("Expected %s to be a valid status", s)
		}
	}
	if IsValidStatus(ContractStatus("suspendido")) {
		t.Error("Expected suspendido to be invalid")
	}
	if IsValidStatus(ContractStatus("")) {
		t.Error("Expected empty status to be invalid")
	}
}
