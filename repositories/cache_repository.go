package repositories

import (
	"encoding/json"
	"log"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/karlseguin/ccache/v3"

	"inmobiliaria-api/domain"
)

// PropertyCacheRepository define la caché de lecturas de inmuebles.
// Solo la usan las lecturas de despliegue (listados, detalle): pueden
// quedar viejas sin riesgo porque toda mutación re-valida sus
// precondiciones dentro de la transacción, nunca contra la caché.
type PropertyCacheRepository interface {
	Get(key string) ([]domain.Property, bool)
	Set(key string, properties []domain.Property, ttl time.Duration)
	Delete(key string)
}

// cacheData representa los datos almacenados en caché
type cacheData struct {
	Properties []domain.Property `json:"properties"`
}

// propertyCacheRepository implementa la caché con dos niveles:
// ccache local en memoria y Memcached compartido entre instancias
type propertyCacheRepository struct {
	localCache      *ccache.Cache[string, *cacheData]
	memcachedClient *memcache.Client
}

// NewPropertyCacheRepository crea una nueva instancia de la caché
func NewPropertyCacheRepository(memcachedHost string) PropertyCacheRepository {
	localCache := ccache.New(ccache.Configure[string, *cacheData]().MaxSize(1000))
	memcachedClient := memcache.New(memcachedHost)

	log.Printf("Property cache initialized with Memcached at %s", memcachedHost)

	return &propertyCacheRepository{
		localCache:      localCache,
		memcachedClient: memcachedClient,
	}
}

// Get obtiene datos del caché (primero local, luego Memcached)
func (r *propertyCacheRepository) Get(key string) ([]domain.Property, bool) {
	// 1. Buscar en caché local primero
	item := r.localCache.Get(key)
	if item != nil && !item.Expired() {
		log.Printf("Cache HIT (local): key=%s", key)
		return item.Value().Properties, true
	}

	// 2. Si no está en local, buscar en Memcached
	memcachedItem, err := r.memcachedClient.Get(key)
	if err != nil {
		if err == memcache.ErrCacheMiss {
			log.Printf("Cache MISS: key=%s", key)
			return nil, false
		}
		log.Printf("Error getting from Memcached: key=%s, error=%v", key, err)
		return nil, false
	}

	var data cacheData
	if err := json.Unmarshal(memcachedItem.Value, &data); err != nil {
		log.Printf("Error unmarshaling cache data from Memcached: key=%s, error=%v", key, err)
		return nil, false
	}

	// 3. Guardar en caché local para próximas consultas
	r.localCache.Set(key, &data, 5*time.Minute)
	log.Printf("Cache HIT (Memcached): key=%s, stored in local cache", key)

	return data.Properties, true
}

// Set guarda datos en ambos niveles de caché
func (r *propertyCacheRepository) Set(key string, properties []domain.Property, ttl time.Duration) {
	data := &cacheData{Properties: properties}

	r.localCache.Set(key, data, ttl)

	jsonData, err := json.Marshal(data)
	if err != nil {
		log.Printf("Error marshaling cache data for Memcached: key=%s, error=%v", key, err)
		return
	}

	memcachedItem := &memcache.Item{
		Key:        key,
		Value:      jsonData,
		Expiration: int32(ttl / time.Second),
	}

	if err := r.memcachedClient.Set(memcachedItem); err != nil {
		log.Printf("Error setting cache in Memcached: key=%s, error=%v", key, err)
		return
	}

	log.Printf("Cache SET: key=%s, ttl=%s", key, ttl)
}

// Delete elimina datos de ambos niveles de caché
func (r *propertyCacheRepository) Delete(key string) {
	r.localCache.Delete(key)

	if err := r.memcachedClient.Delete(key); err != nil && err != memcache.ErrCacheMiss {
		log.Printf("Error deleting from Memcached: key=%s, error=%v", key, err)
		return
	}

	log.Printf("Cache DELETE: key=%s", key)
}

// noopPropertyCache es la implementación nula para cuando la caché está
// deshabilitada (tests, entornos sin Memcached)
type noopPropertyCache struct{}

// NewNoopPropertyCache crea una caché que no guarda nada
func NewNoopPropertyCache() PropertyCacheRepository {
	return &noopPropertyCache{}
}

func (noopPropertyCache) Get(string) ([]domain.Property, bool)            { return nil, false }
func (noopPropertyCache) Set(string, []domain.Property, time.Duration)    {}
func (noopPropertyCache) Delete(string)                                   {}
