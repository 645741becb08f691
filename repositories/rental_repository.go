package repositories

import (
	"errors"

	"gorm.io/gorm"

	"inmobiliaria-api/domain"
)

// RentalRepository define las operaciones de persistencia sobre arriendos
type RentalRepository interface {
	Create(rental *domain.Rental) error
	GetByID(id uint) (*domain.Rental, error)
	GetAll() ([]domain.Rental, error)
	CountByPropertyID(propertyID uint) (int64, error)
	CountByClientID(clientID uint) (int64, error)
}

type rentalRepository struct {
	db *gorm.DB
}

// NewRentalRepository crea una nueva instancia del repositorio
func NewRentalRepository(db *gorm.DB) RentalRepository {
	return &rentalRepository{db: db}
}

// Create inserta un nuevo arriendo
func (r *rentalRepository) Create(rental *domain.Rental) error {
	return r.db.Create(rental).Error
}

// GetByID busca un arriendo por su ID
func (r *rentalRepository) GetByID(id uint) (*domain.Rental, error) {
	var rental domain.Rental
	err := r.db.First(&rental, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rental, nil
}

// GetAll obtiene todos los arriendos
func (r *rentalRepository) GetAll() ([]domain.Rental, error) {
	var rentals []domain.Rental
	err := r.db.Find(&rentals).Error
	return rentals, err
}

// CountByPropertyID cuenta los arriendos que referencian un inmueble
func (r *rentalRepository) CountByPropertyID(propertyID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Rental{}).Where("inmueble_id = ?", propertyID).Count(&count).Error
	return count, err
}

// CountByClientID cuenta los arriendos que referencian un cliente
func (r *rentalRepository) CountByClientID(clientID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Rental{}).Where("cliente_id = ?", clientID).Count(&count).Error
	return count, err
}
