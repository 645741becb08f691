package repositories

import (
	"errors"

	"gorm.io/gorm"

	"inmobiliaria-api/domain"
)

// AgentRepository define las operaciones de persistencia sobre agentes
type AgentRepository interface {
	Create(agent *domain.Agent) error
	GetByID(id uint) (*domain.Agent, error)
	GetAll() ([]domain.Agent, error)
	Update(agent *domain.Agent) error
}

type agentRepository struct {
	db *gorm.DB
}

// NewAgentRepository crea una nueva instancia del repositorio
func NewAgentRepository(db *gorm.DB) AgentRepository {
	return &agentRepository{db: db}
}

// Create inserta un nuevo agente
func (r *agentRepository) Create(agent *domain.Agent) error {
	return r.db.Create(agent).Error
}

// GetByID busca un agente por su ID
func (r *agentRepository) GetByID(id uint) (*domain.Agent, error) {
	var agent domain.Agent
	err := r.db.First(&agent, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &agent, nil
}

// GetAll obtiene todos los agentes
func (r *agentRepository) GetAll() ([]domain.Agent, error) {
	var agents []domain.Agent
	err := r.db.Find(&agents).Error
	return agents, err
}

// Update actualiza un agente existente. Los agentes no se borran, se
// desactivan con el flag activo; los contratos históricos conservan la FK.
func (r *agentRepository) Update(agent *domain.Agent) error {
	return r.db.Save(agent).Error
}
