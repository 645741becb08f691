package services

import (
	"fmt"

	"inmobiliaria-api/repositories"
)

// Guard de dependencias: antes de borrar un inmueble o un cliente se
// cuentan las filas dependientes en venta, contrato, arriendo y visita.
// Se chequean las CUATRO tablas y se reportan juntos todos los motivos
// con registros, no solo el primero encontrado. El guard corre dentro de
// la misma transacción que el borrado para que no haya carrera entre el
// chequeo y el delete.

// propertyDependencies devuelve una descripción legible por cada tabla
// que referencia al inmueble. Lista vacía = borrable.
func propertyDependencies(repos *repositories.Repositories, propertyID uint) ([]string, error) {
	var reasons []string

	count, err := repos.Sales.CountByPropertyID(propertyID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		reasons = append(reasons, fmt.Sprintf("%d venta(s)", count))
	}

	count, err = repos.Contracts.CountByPropertyID(propertyID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		reasons = append(reasons, fmt.Sprintf("%d contrato(s)", count))
	}

	count, err = repos.Rentals.CountByPropertyID(propertyID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		reasons = append(reasons, fmt.Sprintf("%d arriendo(s)", count))
	}

	count, err = repos.Visits.CountByPropertyID(propertyID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		reasons = append(reasons, fmt.Sprintf("%d visita(s)", count))
	}

	return reasons, nil
}

// clientDependencies devuelve una descripción legible por cada tabla
// que referencia al cliente. Lista vacía = borrable.
func clientDependencies(repos *repositories.Repositories, clientID uint) ([]string, error) {
	var reasons []string

	count, err := repos.Sales.CountByClientID(clientID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		reasons = append(reasons, fmt.Sprintf("%d venta(s)", count))
	}

	count, err = repos.Contracts.CountByClientID(clientID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		reasons = append(reasons, fmt.Sprintf("%d contrato(s)", count))
	}

	count, err = repos.Rentals.CountByClientID(clientID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		reasons = append(reasons, fmt.Sprintf("%d arriendo(s)", count))
	}

	count, err = repos.Visits.CountByClientID(clientID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		reasons = append(reasons, fmt.Sprintf("%d visita(s)", count))
	}

	return reasons, nil
}
