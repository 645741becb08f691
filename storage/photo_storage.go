package storage

import (
	"os"
	"path/filepath"
	"strconv"
)

// PhotoStorage maneja los archivos de fotos asociados a un inmueble.
// El filesystem queda fuera del límite transaccional: los borrados son
// best-effort y se loguean, nunca abortan la transacción.
type PhotoStorage interface {
	RemoveAll(propertyID uint) error
}

type localPhotoStorage struct {
	baseDir string
}

// NewLocalPhotoStorage crea el storage de fotos sobre un directorio local
func NewLocalPhotoStorage(baseDir string) PhotoStorage {
	return &localPhotoStorage{baseDir: baseDir}
}

// RemoveAll elimina el directorio de fotos del inmueble.
// Un inmueble sin fotos no es un error.
func (s *localPhotoStorage) RemoveAll(propertyID uint) error {
	dir := filepath.Join(s.baseDir, "inmuebles", strconv.FormatUint(uint64(propertyID), 10))
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}
	return os.RemoveAll(dir)
}
