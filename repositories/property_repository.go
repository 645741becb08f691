package repositories

import (
	"errors"

	"gorm.io/gorm"

	"inmobiliaria-api/domain"
)

// PropertyRepository define las operaciones de persistencia sobre inmuebles
type PropertyRepository interface {
	Create(property *domain.Property) error
	GetByID(id uint) (*domain.Property, error)
	GetAll() ([]domain.Property, error)
	Update(property *domain.Property) error
	UpdateStatus(id uint, status domain.PropertyStatus) error
	Delete(id uint) error
}

type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository crea una nueva instancia del repositorio
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

// Create inserta un nuevo inmueble
func (r *propertyRepository) Create(property *domain.Property) error {
	return r.db.Create(property).Error
}

// GetByID busca un inmueble por su ID
func (r *propertyRepository) GetByID(id uint) (*domain.Property, error) {
	var property domain.Property
	err := r.db.First(&property, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &property, nil
}

// GetAll obtiene todos los inmuebles
func (r *propertyRepository) GetAll() ([]domain.Property, error) {
	var properties []domain.Property
	err := r.db.Find(&properties).Error
	return properties, err
}

// Update actualiza un inmueble existente
func (r *propertyRepository) Update(property *domain.Property) error {
	return r.db.Save(property).Error
}

// UpdateStatus actualiza solo el estado comercial del inmueble
func (r *propertyRepository) UpdateStatus(id uint, status domain.PropertyStatus) error {
	result := r.db.Model(&domain.Property{}).Where("id = ?", id).Update("estado", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un inmueble por su ID
func (r *propertyRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Property{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
