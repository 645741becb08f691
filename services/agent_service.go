package services

import (
	"inmobiliaria-api/domain"
	"inmobiliaria-api/dto"
	"inmobiliaria-api/repositories"
)

// AgentService define las operaciones sobre agentes. Los agentes no se
// borran: se desactivan, porque los contratos históricos los referencian.
type AgentService interface {
	CreateAgent(req dto.CreateAgentRequest) (*domain.Agent, error)
	GetAgentByID(id uint) (*domain.Agent, error)
	GetAllAgents() ([]domain.Agent, error)
	UpdateAgent(id uint, req dto.UpdateAgentRequest) (*domain.Agent, error)
}

type agentService struct {
	repos *repositories.Repositories
}

// NewAgentService crea una nueva instancia del servicio
func NewAgentService(repos *repositories.Repositories) AgentService {
	return &agentService{repos: repos}
}

// CreateAgent registra un agente nuevo, activo por defecto
func (s *agentService) CreateAgent(req dto.CreateAgentRequest) (*domain.Agent, error) {
	agent := &domain.Agent{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Active: true,
	}

	if err := s.repos.Agents.Create(agent); err != nil {
		return nil, err
	}
	return agent, nil
}

// GetAgentByID obtiene un agente por su ID
func (s *agentService) GetAgentByID(id uint) (*domain.Agent, error) {
	return s.repos.Agents.GetByID(id)
}

// GetAllAgents obtiene todos los agentes
func (s *agentService) GetAllAgents() ([]domain.Agent, error) {
	return s.repos.Agents.GetAll()
}

// UpdateAgent actualiza los datos de un agente, incluido el flag activo
func (s *agentService) UpdateAgent(id uint, req dto.UpdateAgentRequest) (*domain.Agent, error) {
	agent, err := s.repos.Agents.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		agent.Name = req.Name
	}
	if req.Email != "" {
		agent.Email = req.Email
	}
	if req.Phone != "" {
		agent.Phone = req.Phone
	}
	if req.Active != nil {
		agent.Active = *req.Active
	}

	if err := s.repos.Agents.Update(agent); err != nil {
		return nil, err
	}
	return agent, nil
}
