package repositories

import "gorm.io/gorm"

// Repositories agrupa todos los repositorios construidos sobre un mismo
// handle de gorm (la conexión compartida o una transacción)
type Repositories struct {
	Properties PropertyRepository
	Clients    ClientRepository
	Agents     AgentRepository
	Contracts  ContractRepository
	Sales      SaleRepository
	Rentals    RentalRepository
	Visits     VisitRepository
}

// NewRepositories construye el conjunto completo de repositorios
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Properties: NewPropertyRepository(db),
		Clients:    NewClientRepository(db),
		Agents:     NewAgentRepository(db),
		Contracts:  NewContractRepository(db),
		Sales:      NewSaleRepository(db),
		Rentals:    NewRentalRepository(db),
		Visits:     NewVisitRepository(db),
	}
}

// TxManager ejecuta una función dentro de una transacción de base de
// datos. Toda mutación del motor (borrado, cambio de estado, create/update
// sensible a conflictos) corre completa acá adentro, de punta a punta,
// para que el chequeo de dependencias, el chequeo de solape y la
// escritura sean atómicos frente a requests concurrentes.
type TxManager interface {
	InTransaction(fn func(repos *Repositories) error) error
}

type gormTxManager struct {
	db *gorm.DB
}

// NewTxManager crea un TxManager sobre la conexión de gorm
func NewTxManager(db *gorm.DB) TxManager {
	return &gormTxManager{db: db}
}

// InTransaction abre la transacción, reconstruye los repositorios sobre
// ella y hace commit o rollback según lo que devuelva fn. Si fn devuelve
// error no queda ningún cambio parcial.
func (m *gormTxManager) InTransaction(fn func(repos *Repositories) error) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
