package repositories

import (
	"errors"

	"gorm.io/gorm"

	"inmobiliaria-api/domain"
)

// SaleRepository define las operaciones de persistencia sobre ventas
type SaleRepository interface {
	Create(sale *domain.Sale) error
	GetByID(id uint) (*domain.Sale, error)
	GetAll() ([]domain.Sale, error)
	CountByPropertyID(propertyID uint) (int64, error)
	CountByClientID(clientID uint) (int64, error)
}

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository crea una nueva instancia del repositorio
func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &saleRepository{db: db}
}

// Create inserta una nueva venta
func (r *saleRepository) Create(sale *domain.Sale) error {
	return r.db.Create(sale).Error
}

// GetByID busca una venta por su ID
func (r *saleRepository) GetByID(id uint) (*domain.Sale, error) {
	var sale domain.Sale
	err := r.db.First(&sale, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

// GetAll obtiene todas las ventas
func (r *saleRepository) GetAll() ([]domain.Sale, error) {
	var sales []domain.Sale
	err := r.db.Find(&sales).Error
	return sales, err
}

// CountByPropertyID cuenta las ventas que referencian un inmueble
func (r *saleRepository) CountByPropertyID(propertyID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Sale{}).Where("inmueble_id = ?", propertyID).Count(&count).Error
	return count, err
}

// CountByClientID cuenta las ventas que referencian un cliente
func (r *saleRepository) CountByClientID(clientID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Sale{}).Where("cliente_id = ?", clientID).Count(&count).Error
	return count, err
}
