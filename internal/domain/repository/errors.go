package repository

import "errors"

var (
	// ErrNotFound indica que el recurso solicitado no existe.
	ErrNotFound = errors.New("not found")

	// ErrConflict indica un conflicto (ej: duplicado, unique constraint).
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indica que los datos de entrada son inválidos.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPermissionDenied indica que una regla de negocio bloquea la acción.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrStorage indica una falla de la capa de persistencia
	// (incluye violaciones de integridad referencial).
	ErrStorage = errors.New("storage error")
)

// IsNotFound verifica si el error es ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict verifica si el error es ErrConflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsInvalidInput verifica si el error es ErrInvalidInput.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsPermissionDenied verifica si el error es ErrPermissionDenied.
func IsPermissionDenied(err error) bool {
	return errors.Is(err, ErrPermissionDenied)
}

// IsStorage verifica si el error es ErrStorage.
func IsStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}
