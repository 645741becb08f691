package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AuditEntry representa un registro de auditoría de una mutación del
// motor: borrados y cambios de estado de contrato
type AuditEntry struct {
	Entity    string    `bson:"entidad"`
	EntityID  uint      `bson:"entidad_id"`
	Action    string    `bson:"accion"`
	Detail    string    `bson:"detalle"`
	Timestamp time.Time `bson:"fecha"`
}

// AuditRepository define el registro de auditoría. Se escribe DESPUÉS
// del commit y es best-effort: un fallo acá nunca revierte la operación.
type AuditRepository interface {
	Record(entry AuditEntry) error
}

type mongoAuditRepository struct {
	collection *mongo.Collection
}

// NewMongoAuditRepository conecta con MongoDB y devuelve el repositorio
// de auditoría sobre la colección "auditoria"
func NewMongoAuditRepository(uri, database string) (AuditRepository, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &mongoAuditRepository{
		collection: client.Database(database).Collection("auditoria"),
	}, nil
}

// Record inserta un registro de auditoría
func (r *mongoAuditRepository) Record(entry AuditEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// noopAuditRepository es la implementación nula para cuando la auditoría
// está deshabilitada (tests, entornos sin MongoDB)
type noopAuditRepository struct{}

// NewNoopAuditRepository crea un repositorio de auditoría que descarta todo
func NewNoopAuditRepository() AuditRepository {
	return &noopAuditRepository{}
}

func (noopAuditRepository) Record(AuditEntry) error { return nil }
