package services

import (
	"time"

	"inmobiliaria-api/domain"
	"inmobiliaria-api/publishers"
	"inmobiliaria-api/repositories"
)

// ============================================
// MOCKS de los repositorios para los tests
// ============================================

// mockTxManager ejecuta la función directamente sobre los repos del mock.
// La atomicidad real la cubren los tests de repositorios sobre sqlite.
type mockTxManager struct {
	repos *repositories.Repositories
}

func (m *mockTxManager) InTransaction(fn func(repos *repositories.Repositories) error) error {
	return fn(m.repos)
}

type mockPropertyRepository struct {
	properties map[uint]*domain.Property
	nextID     uint
}

func newMockPropertyRepository() *mockPropertyRepository {
	return &mockPropertyRepository{properties: make(map[uint]*domain.Property)}
}

func (m *mockPropertyRepository) Create(property *domain.Property) error {
	m.nextID++
	property.ID = m.nextID
	m.properties[property.ID] = property
	return nil
}

func (m *mockPropertyRepository) GetByID(id uint) (*domain.Property, error) {
	property, exists := m.properties[id]
	if !exists {
		return nil, domain.ErrNotFound
	}
	copied := *property
	return &copied, nil
}

func (m *mockPropertyRepository) GetAll() ([]domain.Property, error) {
	var out []domain.Property
	for _, p := range m.properties {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockPropertyRepository) Update(property *domain.Property) error {
	if _, exists := m.properties[property.ID]; !exists {
		return domain.ErrNotFound
	}
	m.properties[property.ID] = property
	return nil
}

func (m *mockPropertyRepository) UpdateStatus(id uint, status domain.PropertyStatus) error {
	property, exists := m.properties[id]
	if !exists {
		return domain.ErrNotFound
	}
	property.Status = status
	return nil
}

func (m *mockPropertyRepository) Delete(id uint) error {
	if _, exists := m.properties[id]; !exists {
		return domain.ErrNotFound
	}
	delete(m.properties, id)
	return nil
}

type mockClientRepository struct {
	clients map[uint]*domain.Client
	nextID  uint
}

func newMockClientRepository() *mockClientRepository {
	return &mockClientRepository{clients: make(map[uint]*domain.Client)}
}

func (m *mockClientRepository) Create(client *domain.Client) error {
	m.nextID++
	client.ID = m.nextID
	m.clients[client.ID] = client
	return nil
}

func (m *mockClientRepository) GetByID(id uint) (*domain.Client, error) {
	client, exists := m.clients[id]
	if !exists {
		return nil, domain.ErrNotFound
	}
	copied := *client
	return &copied, nil
}

func (m *mockClientRepository) GetByEmail(email string) (*domain.Client, error) {
	for _, client := range m.clients {
		if client.Email == email {
			return client, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockClientRepository) GetByDocument(documentType, documentNumber string) (*domain.Client, error) {
	for _, client := range m.clients {
		if client.DocumentType == documentType && client.DocumentNumber == documentNumber {
			return client, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockClientRepository) GetAll() ([]domain.Client, error) {
	var out []domain.Client
	for _, c := range m.clients {
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockClientRepository) Update(client *domain.Client) error {
	if _, exists := m.clients[client.ID]; !exists {
		return domain.ErrNotFound
	}
	m.clients[client.ID] = client
	return nil
}

func (m *mockClientRepository) Delete(id uint) error {
	if _, exists := m.clients[id]; !exists {
		return domain.ErrNotFound
	}
	delete(m.clients, id)
	return nil
}

type mockAgentRepository struct {
	agents map[uint]*domain.Agent
	nextID uint
}

func newMockAgentRepository() *mockAgentRepository {
	return &mockAgentRepository{agents: make(map[uint]*domain.Agent)}
}

func (m *mockAgentRepository) Create(agent *domain.Agent) error {
	m.nextID++
	agent.ID = m.nextID
	m.agents[agent.ID] = agent
	return nil
}

func (m *mockAgentRepository) GetByID(id uint) (*domain.Agent, error) {
	agent, exists := m.agents[id]
	if !exists {
		return nil, domain.ErrNotFound
	}
	copied := *agent
	return &copied, nil
}

func (m *mockAgentRepository) GetAll() ([]domain.Agent, error) {
	var out []domain.Agent
	for _, a := range m.agents {
		out = append(out, *a)
	}
	return out, nil
}

func (m *mockAgentRepository) Update(agent *domain.Agent) error {
	if _, exists := m.agents[agent.ID]; !exists {
		return domain.ErrNotFound
	}
	m.agents[agent.ID] = agent
	return nil
}

type mockContractRepository struct {
	contracts map[uint]*domain.Contract
	nextID    uint
}

func newMockContractRepository() *mockContractRepository {
	return &mockContractRepository{contracts: make(map[uint]*domain.Contract)}
}

func (m *mockContractRepository) Create(contract *domain.Contract) error {
	m.nextID++
	contract.ID = m.nextID
	m.contracts[contract.ID] = contract
	return nil
}

func (m *mockContractRepository) GetByID(id uint) (*domain.Contract, error) {
	contract, exists := m.contracts[id]
	if !exists {
		return nil, domain.ErrNotFound
	}
	copied := *contract
	return &copied, nil
}

func (m *mockContractRepository) GetAll() ([]domain.Contract, error) {
	var out []domain.Contract
	for _, c := range m.contracts {
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockContractRepository) GetByPropertyID(propertyID uint) ([]domain.Contract, error) {
	var out []domain.Contract
	for _, c := range m.contracts {
		if c.PropertyID == propertyID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockContractRepository) Update(contract *domain.Contract) error {
	if _, exists := m.contracts[contract.ID]; !exists {
		return domain.ErrNotFound
	}
	m.contracts[contract.ID] = contract
	return nil
}

func (m *mockContractRepository) UpdateStatus(id uint, status domain.ContractStatus) error {
	contract, exists := m.contracts[id]
	if !exists {
		return domain.ErrNotFound
	}
	contract.Status = status
	contract.UpdatedAt = time.Now()
	return nil
}

// FindActiveOverlap replica en memoria la misma regla de solape que la
// consulta SQL: solo activos, fin NULL = sin límite, adyacencia cuenta
func (m *mockContractRepository) FindActiveOverlap(propertyID uint, start time.Time, end *time.Time, excludeID uint) (*domain.Contract, error) {
	var found *domain.Contract
	for _, contract := range m.contracts {
		if contract.PropertyID != propertyID {
			continue
		}
		if contract.Status != domain.ContractStatusActive {
			continue
		}
		if contract.ID == excludeID {
			continue
		}
		// El fin del otro debe alcanzar nuestro inicio
		if contract.EndDate != nil && contract.EndDate.Before(start) {
			continue
		}
		// Nuestro fin debe alcanzar el inicio del otro
		if end != nil && contract.StartDate.After(*end) {
			continue
		}
		if found == nil || contract.StartDate.Before(found.StartDate) {
			copied := *contract
			found = &copied
		}
	}
	return found, nil
}

func (m *mockContractRepository) CountByPropertyID(propertyID uint) (int64, error) {
	var count int64
	for _, c := range m.contracts {
		if c.PropertyID == propertyID {
			count++
		}
	}
	return count, nil
}

func (m *mockContractRepository) CountByClientID(clientID uint) (int64, error) {
	var count int64
	for _, c := range m.contracts {
		if c.ClientID == clientID {
			count++
		}
	}
	return count, nil
}

type mockSaleRepository struct {
	sales  map[uint]*domain.Sale
	nextID uint
}

func newMockSaleRepository() *mockSaleRepository {
	return &mockSaleRepository{sales: make(map[uint]*domain.Sale)}
}

func (m *mockSaleRepository) Create(sale *domain.Sale) error {
	m.nextID++
	sale.ID = m.nextID
	m.sales[sale.ID] = sale
	return nil
}

func (m *mockSaleRepository) GetByID(id uint) (*domain.Sale, error) {
	sale, exists := m.sales[id]
	if !exists {
		return nil, domain.ErrNotFound
	}
	return sale, nil
}

func (m *mockSaleRepository) GetAll() ([]domain.Sale, error) {
	var out []domain.Sale
	for _, s := range m.sales {
		out = append(out, *s)
	}
	return out, nil
}

func (m *mockSaleRepository) CountByPropertyID(propertyID uint) (int64, error) {
	var count int64
	for _, s := range m.sales {
		if s.PropertyID == propertyID {
			count++
		}
	}
	return count, nil
}

func (m *mockSaleRepository) CountByClientID(clientID uint) (int64, error) {
	var count int64
	for _, s := range m.sales {
		if s.ClientID == clientID {
			count++
		}
	}
	return count, nil
}

type mockRentalRepository struct {
	rentals map[uint]*domain.Rental
	nextID  uint
}

func newMockRentalRepository() *mockRentalRepository {
	return &mockRentalRepository{rentals: make(map[uint]*domain.Rental)}
}

func (m *mockRentalRepository) Create(rental *domain.Rental) error {
	m.nextID++
	rental.ID = m.nextID
	m.rentals[rental.ID] = rental
	return nil
}

func (m *mockRentalRepository) GetByID(id uint) (*domain.Rental, error) {
	rental, exists := m.rentals[id]
	if !exists {
		return nil, domain.ErrNotFound
	}
	return rental, nil
}

func (m *mockRentalRepository) GetAll() ([]domain.Rental, error) {
	var out []domain.Rental
	for _, r := range m.rentals {
		out = append(out, *r)
	}
	return out, nil
}

func (m *mockRentalRepository) CountByPropertyID(propertyID uint) (int64, error) {
	var count int64
	for _, r := range m.rentals {
		if r.PropertyID == propertyID {
			count++
		}
	}
	return count, nil
}

func (m *mockRentalRepository) CountByClientID(clientID uint) (int64, error) {
	var count int64
	for _, r := range m.rentals {
		if r.ClientID == clientID {
			count++
		}
	}
	return count, nil
}

type mockVisitRepository struct {
	visits map[uint]*domain.Visit
	nextID uint
}

func newMockVisitRepository() *mockVisitRepository {
	return &mockVisitRepository{visits: make(map[uint]*domain.Visit)}
}

func (m *mockVisitRepository) Create(visit *domain.Visit) error {
	m.nextID++
	visit.ID = m.nextID
	m.visits[visit.ID] = visit
	return nil
}

func (m *mockVisitRepository) GetByID(id uint) (*domain.Visit, error) {
	visit, exists := m.visits[id]
	if !exists {
		return nil, domain.ErrNotFound
	}
	return visit, nil
}

func (m *mockVisitRepository) GetAll() ([]domain.Visit, error) {
	var out []domain.Visit
	for _, v := range m.visits {
		out = append(out, *v)
	}
	return out, nil
}

func (m *mockVisitRepository) CountByPropertyID(propertyID uint) (int64, error) {
	var count int64
	for _, v := range m.visits {
		if v.PropertyID == propertyID {
			count++
		}
	}
	return count, nil
}

func (m *mockVisitRepository) CountByClientID(clientID uint) (int64, error) {
	var count int64
	for _, v := range m.visits {
		if v.ClientID == clientID {
			count++
		}
	}
	return count, nil
}

// mockPhotoStorage registra los borrados de fotos
type mockPhotoStorage struct {
	removed []uint
	err     error
}

func (m *mockPhotoStorage) RemoveAll(propertyID uint) error {
	if m.err != nil {
		return m.err
	}
	m.removed = append(m.removed, propertyID)
	return nil
}

// mockCache registra las invalidaciones para los tests
type mockCache struct {
	deletedKeys []string
}

func (m *mockCache) Get(string) ([]domain.Property, bool)         { return nil, false }
func (m *mockCache) Set(string, []domain.Property, time.Duration) {}
func (m *mockCache) Delete(key string)                            { m.deletedKeys = append(m.deletedKeys, key) }

// testEnv arma el conjunto completo de mocks y los servicios encima
type testEnv struct {
	repos     *repositories.Repositories
	txManager *mockTxManager
	photos    *mockPhotoStorage
	cache     *mockCache

	contracts  ContractService
	properties PropertyService
	clients    ClientService
	agents     AgentService
}

func newTestEnv() *testEnv {
	repos := &repositories.Repositories{
		Properties: newMockPropertyRepository(),
		Clients:    newMockClientRepository(),
		Agents:     newMockAgentRepository(),
		Contracts:  newMockContractRepository(),
		Sales:      newMockSaleRepository(),
		Rentals:    newMockRentalRepository(),
		Visits:     newMockVisitRepository(),
	}
	txManager := &mockTxManager{repos: repos}
	photos := &mockPhotoStorage{}
	cache := &mockCache{}

	publisher := publishers.NewNoopPublisher()
	audit := repositories.NewNoopAuditRepository()

	return &testEnv{
		repos:      repos,
		txManager:  txManager,
		photos:     photos,
		cache:      cache,
		contracts:  NewContractService(txManager, repos, publisher, audit),
		properties: NewPropertyService(txManager, repos, cache, photos, publisher, audit),
		clients:    NewClientService(txManager, repos, publisher, audit),
		agents:     NewAgentService(repos),
	}
}
