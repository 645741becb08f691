package services

import (
	"errors"

	"inmobiliaria-api/domain"
	"inmobiliaria-api/dto"
	"inmobiliaria-api/publishers"
	"inmobiliaria-api/repositories"
)

// ClientService define las operaciones sobre clientes, incluido el
// borrado protegido por el guard de dependencias
type ClientService interface {
	CreateClient(req dto.CreateClientRequest) (*domain.Client, error)
	GetClientByID(id uint) (*domain.Client, error)
	GetAllClients() ([]domain.Client, error)
	UpdateClient(id uint, req dto.UpdateClientRequest) (*domain.Client, error)
	CheckDeletable(id uint) ([]string, error)
	DeleteClient(id uint) error
}

type clientService struct {
	txManager repositories.TxManager
	repos     *repositories.Repositories
	publisher publishers.EventPublisher
	audit     repositories.AuditRepository
}

// NewClientService crea una nueva instancia del servicio
func NewClientService(txManager repositories.TxManager, repos *repositories.Repositories, publisher publishers.EventPublisher, audit repositories.AuditRepository) ClientService {
	return &clientService{
		txManager: txManager,
		repos:     repos,
		publisher: publisher,
		audit:     audit,
	}
}

// CreateClient registra un cliente nuevo
func (s *clientService) CreateClient(req dto.CreateClientRequest) (*domain.Client, error) {
	// 1. Verificar que el documento no esté registrado
	existing, err := s.repos.Clients.GetByDocument(req.DocumentType, req.DocumentNumber)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.ValidationError{Field: "numero_documento", Reason: "document already registered"}
	}

	// 2. Verificar que el email no esté registrado
	existing, err = s.repos.Clients.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.ValidationError{Field: "email", Reason: "email already registered"}
	}

	// 3. Crear el cliente
	client := &domain.Client{
		Name:           req.Name,
		DocumentType:   req.DocumentType,
		DocumentNumber: req.DocumentNumber,
		Email:          req.Email,
		Phone:          req.Phone,
		Type:           domain.ClientType(req.Type),
	}

	if err := s.repos.Clients.Create(client); err != nil {
		return nil, err
	}

	s.publisher.Publish("create", "cliente", client.ID)

	return client, nil
}

// GetClientByID obtiene un cliente por su ID
func (s *clientService) GetClientByID(id uint) (*domain.Client, error) {
	return s.repos.Clients.GetByID(id)
}

// GetAllClients obtiene todos los clientes
func (s *clientService) GetAllClients() ([]domain.Client, error) {
	return s.repos.Clients.GetAll()
}

// UpdateClient actualiza los datos de un cliente existente
func (s *clientService) UpdateClient(id uint, req dto.UpdateClientRequest) (*domain.Client, error) {
	// 1. Verificar que el cliente existe
	client, err := s.repos.Clients.GetByID(id)
	if err != nil {
		return nil, err
	}

	// 2. Si cambia el email, verificar que no esté en uso
	if req.Email != "" && req.Email != client.Email {
		existing, err := s.repos.Clients.GetByEmail(req.Email)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, &domain.ValidationError{Field: "email", Reason: "email already registered"}
		}
		client.Email = req.Email
	}

	// 3. Actualizar el resto de los campos que vienen en el request
	if req.Name != "" {
		client.Name = req.Name
	}
	if req.Phone != "" {
		client.Phone = req.Phone
	}
	if req.Type != "" {
		client.Type = domain.ClientType(req.Type)
	}

	// 4. Guardar
	if err := s.repos.Clients.Update(client); err != nil {
		return nil, err
	}

	s.publisher.Publish("update", "cliente", id)

	return client, nil
}

// CheckDeletable devuelve las dependencias que bloquean el borrado del
// cliente (lista vacía = borrable). El guard definitivo corre dentro de
// la transacción de DeleteClient.
func (s *clientService) CheckDeletable(id uint) ([]string, error) {
	if _, err := s.repos.Clients.GetByID(id); err != nil {
		return nil, err
	}
	return clientDependencies(s.repos, id)
}

// DeleteClient borra un cliente si y solo si no tiene dependencias.
// Guard y delete corren en la misma transacción.
func (s *clientService) DeleteClient(id uint) error {
	err := s.txManager.InTransaction(func(repos *repositories.Repositories) error {
		// 1. El cliente debe existir
		if _, err := repos.Clients.GetByID(id); err != nil {
			return err
		}

		// 2. Guard de dependencias
		reasons, err := clientDependencies(repos, id)
		if err != nil {
			return err
		}
		if len(reasons) > 0 {
			return &domain.DependencyBlockedError{Entity: "cliente", EntityID: id, Reasons: reasons}
		}

		// 3. Borrar la fila
		return repos.Clients.Delete(id)
	})
	if err != nil {
		return err
	}

	// 4. Post-commit (best-effort)
	s.publisher.Publish("delete", "cliente", id)
	recordAudit(s.audit, "cliente", id, "delete", "client deleted with zero dependents")

	return nil
}
