package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"inmobiliaria-api/domain"
)

// ContractRepository define las operaciones de persistencia sobre contratos
type ContractRepository interface {
	Create(contract *domain.Contract) error
	GetByID(id uint) (*domain.Contract, error)
	GetAll() ([]domain.Contract, error)
	GetByPropertyID(propertyID uint) ([]domain.Contract, error)
	Update(contract *domain.Contract) error
	UpdateStatus(id uint, status domain.ContractStatus) error
	FindActiveOverlap(propertyID uint, start time.Time, end *time.Time, excludeID uint) (*domain.Contract, error)
	CountByPropertyID(propertyID uint) (int64, error)
	CountByClientID(clientID uint) (int64, error)
}

type contractRepository struct {
	db *gorm.DB
}

// NewContractRepository crea una nueva instancia del repositorio
func NewContractRepository(db *gorm.DB) ContractRepository {
	return &contractRepository{db: db}
}

// Create inserta un nuevo contrato
func (r *contractRepository) Create(contract *domain.Contract) error {
	return r.db.Create(contract).Error
}

// GetByID busca un contrato por su ID
func (r *contractRepository) GetByID(id uint) (*domain.Contract, error) {
	var contract domain.Contract
	err := r.db.First(&contract, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &contract, nil
}

// GetAll obtiene todos los contratos
func (r *contractRepository) GetAll() ([]domain.Contract, error) {
	var contracts []domain.Contract
	err := r.db.Find(&contracts).Error
	return contracts, err
}

// GetByPropertyID obtiene los contratos de un inmueble
func (r *contractRepository) GetByPropertyID(propertyID uint) ([]domain.Contract, error) {
	var contracts []domain.Contract
	err := r.db.Where("inmueble_id = ?", propertyID).Find(&contracts).Error
	return contracts, err
}

// Update actualiza un contrato existente
func (r *contractRepository) Update(contract *domain.Contract) error {
	return r.db.Save(contract).Error
}

// UpdateStatus persiste el nuevo estado y el timestamp de actualización.
// La validación de la transición es responsabilidad del servicio; este
// método es la única escritura de contrato.estado del sistema.
func (r *contractRepository) UpdateStatus(id uint, status domain.ContractStatus) error {
	result := r.db.Model(&domain.Contract{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"estado":              status,
			"fecha_actualizacion": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// FindActiveOverlap busca un contrato ACTIVO del inmueble cuyo intervalo
// se solape con [start, end]. Solo los activos cuentan: borrador,
// finalizado y cancelado nunca generan conflicto.
//
// Regla de solape: [s1, e1] y [s2, e2] se solapan si s1 <= e2 y s2 <= e1,
// con fin NULL = sin límite hacia adelante. La adyacencia de mismo día
// (fin == inicio del otro) cuenta como solape: la granularidad es el día
// completo, no hay excepción "espalda con espalda".
//
// excludeID permite que una actualización se compare contra todos los
// demás contratos sin marcarse a sí misma.
//
// Devuelve nil si no hay solape.
func (r *contractRepository) FindActiveOverlap(propertyID uint, start time.Time, end *time.Time, excludeID uint) (*domain.Contract, error) {
	query := r.db.Where("inmueble_id = ? AND estado = ?", propertyID, domain.ContractStatusActive)

	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	// El fin del otro contrato debe alcanzar nuestro inicio (NULL = sin fin)
	query = query.Where("(fecha_fin IS NULL OR fecha_fin >= ?)", start)

	// Nuestro fin debe alcanzar el inicio del otro; sin fecha_fin el
	// candidato es ilimitado y choca con cualquier activo que llegue a start
	if end != nil {
		query = query.Where("fecha_inicio <= ?", *end)
	}

	var contract domain.Contract
	err := query.Order("fecha_inicio").First(&contract).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contract, nil
}

// CountByPropertyID cuenta los contratos que referencian un inmueble
func (r *contractRepository) CountByPropertyID(propertyID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Contract{}).Where("inmueble_id = ?", propertyID).Count(&count).Error
	return count, err
}

// CountByClientID cuenta los contratos que referencian un cliente
func (r *contractRepository) CountByClientID(clientID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Contract{}).Where("cliente_id = ?", clientID).Count(&count).Error
	return count, err
}
