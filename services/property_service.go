package services

import (
	"fmt"
	"log"
	"time"

	"inmobiliaria-api/domain"
	"inmobiliaria-api/dto"
	"inmobiliaria-api/publishers"
	"inmobiliaria-api/repositories"
	"inmobiliaria-api/storage"
)

const (
	allPropertiesCacheKey = "inmuebles:all"
	propertyCacheTTL      = 5 * time.Minute
)

func propertyCacheKey(id uint) string {
	return fmt.Sprintf("inmueble:%d", id)
}

// PropertyService define las operaciones sobre inmuebles, incluido el
// borrado protegido por el guard de dependencias
type PropertyService interface {
	CreateProperty(req dto.CreatePropertyRequest) (*domain.Property, error)
	GetPropertyByID(id uint) (*domain.Property, error)
	GetAllProperties() ([]domain.Property, error)
	UpdateProperty(id uint, req dto.UpdatePropertyRequest) (*domain.Property, error)
	UpdateStatus(id uint, status domain.PropertyStatus) error
	CheckDeletable(id uint) ([]string, error)
	DeleteProperty(id uint) error
}

type propertyService struct {
	txManager repositories.TxManager
	repos     *repositories.Repositories
	cache     repositories.PropertyCacheRepository
	photos    storage.PhotoStorage
	publisher publishers.EventPublisher
	audit     repositories.AuditRepository
}

// NewPropertyService crea una nueva instancia del servicio
func NewPropertyService(txManager repositories.TxManager, repos *repositories.Repositories, cache repositories.PropertyCacheRepository, photos storage.PhotoStorage, publisher publishers.EventPublisher, audit repositories.AuditRepository) PropertyService {
	return &propertyService{
		txManager: txManager,
		repos:     repos,
		cache:     cache,
		photos:    photos,
		publisher: publisher,
		audit:     audit,
	}
}

// CreateProperty registra un inmueble nuevo, siempre disponible
func (s *propertyService) CreateProperty(req dto.CreatePropertyRequest) (*domain.Property, error) {
	property := &domain.Property{
		Type:    domain.PropertyType(req.Type),
		Address: req.Address,
		City:    req.City,
		Price:   req.Price,
		Status:  domain.PropertyStatusAvailable,
		Area:    req.Area,
		Rooms:   req.Rooms,
		Baths:   req.Baths,
		Photos:  req.Photos,
	}

	if err := s.repos.Properties.Create(property); err != nil {
		return nil, err
	}

	s.cache.Delete(allPropertiesCacheKey)
	s.publisher.Publish("create", "inmueble", property.ID)

	return property, nil
}

// GetPropertyByID obtiene un inmueble por su ID. Es una lectura de
// despliegue: pasa por la caché y puede quedar vieja; las mutaciones
// nunca dependen de lo que haya acá.
func (s *propertyService) GetPropertyByID(id uint) (*domain.Property, error) {
	if cached, ok := s.cache.Get(propertyCacheKey(id)); ok && len(cached) == 1 {
		return &cached[0], nil
	}

	property, err := s.repos.Properties.GetByID(id)
	if err != nil {
		return nil, err
	}

	s.cache.Set(propertyCacheKey(id), []domain.Property{*property}, propertyCacheTTL)
	return property, nil
}

// GetAllProperties obtiene todos los inmuebles (lectura de despliegue)
func (s *propertyService) GetAllProperties() ([]domain.Property, error) {
	if cached, ok := s.cache.Get(allPropertiesCacheKey); ok {
		return cached, nil
	}

	properties, err := s.repos.Properties.GetAll()
	if err != nil {
		return nil, err
	}

	s.cache.Set(allPropertiesCacheKey, properties, propertyCacheTTL)
	return properties, nil
}

// UpdateProperty actualiza los datos de un inmueble existente
func (s *propertyService) UpdateProperty(id uint, req dto.UpdatePropertyRequest) (*domain.Property, error) {
	// 1. Verificar que el inmueble existe
	property, err := s.repos.Properties.GetByID(id)
	if err != nil {
		return nil, err
	}

	// 2. Actualizar los campos que vienen en el request
	if req.Address != "" {
		property.Address = req.Address
	}
	if req.City != "" {
		property.City = req.City
	}
	if req.Price > 0 {
		property.Price = req.Price
	}
	if req.Area != nil {
		property.Area = req.Area
	}
	if req.Rooms != nil {
		property.Rooms = req.Rooms
	}
	if req.Baths != nil {
		property.Baths = req.Baths
	}
	if req.Photos != nil {
		property.Photos = req.Photos
	}

	// 3. Guardar e invalidar la caché
	if err := s.repos.Properties.Update(property); err != nil {
		return nil, err
	}

	s.cache.Delete(propertyCacheKey(id))
	s.cache.Delete(allPropertiesCacheKey)
	s.publisher.Publish("update", "inmueble", id)

	return property, nil
}

// UpdateStatus sincroniza el estado comercial del inmueble
// (disponible/arrendado/vendido). Lo invoca la capa que llama cuando un
// contrato se completa; el motor de contratos no depende de esto.
func (s *propertyService) UpdateStatus(id uint, status domain.PropertyStatus) error {
	if err := s.repos.Properties.UpdateStatus(id, status); err != nil {
		return err
	}

	s.cache.Delete(propertyCacheKey(id))
	s.cache.Delete(allPropertiesCacheKey)
	s.publisher.Publish("update", "inmueble", id)

	return nil
}

// CheckDeletable devuelve las dependencias que bloquean el borrado del
// inmueble (lista vacía = borrable). Es una consulta de vista previa:
// el guard definitivo corre dentro de la transacción de DeleteProperty.
func (s *propertyService) CheckDeletable(id uint) ([]string, error) {
	if _, err := s.repos.Properties.GetByID(id); err != nil {
		return nil, err
	}
	return propertyDependencies(s.repos, id)
}

// DeleteProperty borra un inmueble si y solo si no tiene dependencias.
// El guard y el delete corren en la misma transacción; si cualquier paso
// falla no queda borrado parcial.
func (s *propertyService) DeleteProperty(id uint) error {
	err := s.txManager.InTransaction(func(repos *repositories.Repositories) error {
		// 1. El inmueble debe existir
		if _, err := repos.Properties.GetByID(id); err != nil {
			return err
		}

		// 2. Guard de dependencias: cualquier registro dependiente bloquea
		reasons, err := propertyDependencies(repos, id)
		if err != nil {
			return err
		}
		if len(reasons) > 0 {
			return &domain.DependencyBlockedError{Entity: "inmueble", EntityID: id, Reasons: reasons}
		}

		// 3. Borrar las fotos del disco. El filesystem queda fuera de la
		// garantía transaccional: un fallo acá se loguea y no aborta.
		if err := s.photos.RemoveAll(id); err != nil {
			log.Printf("Error removing photos for property %d: %v", id, err)
		}

		// 4. Borrar la fila
		return repos.Properties.Delete(id)
	})
	if err != nil {
		return err
	}

	// 5. Post-commit: invalidar caché, notificar y auditar (best-effort)
	s.cache.Delete(propertyCacheKey(id))
	s.cache.Delete(allPropertiesCacheKey)
	s.publisher.Publish("delete", "inmueble", id)
	recordAudit(s.audit, "inmueble", id, "delete", "property deleted with zero dependents")

	return nil
}
