package repositories

import (
	"errors"

	"gorm.io/gorm"

	"inmobiliaria-api/domain"
)

// VisitRepository define las operaciones de persistencia sobre visitas
type VisitRepository interface {
	Create(visit *domain.Visit) error
	GetByID(id uint) (*domain.Visit, error)
	GetAll() ([]domain.Visit, error)
	CountByPropertyID(propertyID uint) (int64, error)
	CountByClientID(clientID uint) (int64, error)
}

type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository crea una nueva instancia del repositorio
func NewVisitRepository(db *gorm.DB) VisitRepository {
	return &visitRepository{db: db}
}

// Create inserta una nueva visita
func (r *visitRepository) Create(visit *domain.Visit) error {
	return r.db.Create(visit).Error
}

// GetByID busca una visita por su ID
func (r *visitRepository) GetByID(id uint) (*domain.Visit, error) {
	var visit domain.Visit
	err := r.db.First(&visit, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &visit, nil
}

// GetAll obtiene todas las visitas
func (r *visitRepository) GetAll() ([]domain.Visit, error) {
	var visits []domain.Visit
	err := r.db.Find(&visits).Error
	return visits, err
}

// CountByPropertyID cuenta las visitas que referencian un inmueble
func (r *visitRepository) CountByPropertyID(propertyID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Visit{}).Where("inmueble_id = ?", propertyID).Count(&count).Error
	return count, err
}

// CountByClientID cuenta las visitas que referencian un cliente
func (r *visitRepository) CountByClientID(clientID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Visit{}).Where("cliente_id = ?", clientID).Count(&count).Error
	return count, err
}
