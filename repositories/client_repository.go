package repositories

import (
	"errors"

	"gorm.io/gorm"

	"inmobiliaria-api/domain"
)

// ClientRepository define las operaciones de persistencia sobre clientes
type ClientRepository interface {
	Create(client *domain.Client) error
	GetByID(id uint) (*domain.Client, error)
	GetByEmail(email string) (*domain.Client, error)
	GetByDocument(documentType, documentNumber string) (*domain.Client, error)
	GetAll() ([]domain.Client, error)
	Update(client *domain.Client) error
	Delete(id uint) error
}

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository crea una nueva instancia del repositorio
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

// Create inserta un nuevo cliente
func (r *clientRepository) Create(client *domain.Client) error {
	return r.db.Create(client).Error
}

// GetByID busca un cliente por su ID
func (r *clientRepository) GetByID(id uint) (*domain.Client, error) {
	var client domain.Client
	err := r.db.First(&client, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

// GetByEmail busca un cliente por su email (único)
func (r *clientRepository) GetByEmail(email string) (*domain.Client, error) {
	var client domain.Client
	err := r.db.Where("email = ?", email).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

// GetByDocument busca un cliente por tipo y número de documento (par único)
func (r *clientRepository) GetByDocument(documentType, documentNumber string) (*domain.Client, error) {
	var client domain.Client
	err := r.db.Where("tipo_documento = ? AND numero_documento = ?", documentType, documentNumber).
		First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

// GetAll obtiene todos los clientes
func (r *clientRepository) GetAll() ([]domain.Client, error) {
	var clients []domain.Client
	err := r.db.Find(&clients).Error
	return clients, err
}

// Update actualiza un cliente existente
func (r *clientRepository) Update(client *domain.Client) error {
	return r.db.Save(client).Error
}

// Delete elimina un cliente por su ID
func (r *clientRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Client{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
