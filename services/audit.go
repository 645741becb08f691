package services

import (
	"log"

	"inmobiliaria-api/repositories"
)

// recordAudit escribe un registro de auditoría después del commit.
// Best-effort: un fallo se loguea y no afecta la operación ya confirmada.
func recordAudit(audit repositories.AuditRepository, entity string, entityID uint, action, detail string) {
	err := audit.Record(repositories.AuditEntry{
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Detail:   detail,
	})
	if err != nil {
		log.Printf("Error recording audit entry (%s %s %d): %v", action, entity, entityID, err)
	}
}
