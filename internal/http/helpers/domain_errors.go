package helpers

import (
	"github.com/dropDatabas3/teamspace/internal/domain/repository"
	httperrors "github.com/dropDatabas3/teamspace/internal/http/errors"
)

// FromDomain mapea errores de la capa de dominio a AppError:
//
//	ErrInvalidInput      -> 422
//	ErrNotFound          -> 404
//	ErrPermissionDenied  -> 403
//	ErrConflict          -> 409
//	ErrStorage y resto   -> 500
//
// El detalle del error de validación viaja al cliente; las causas de
// storage no.
func FromDomain(err error) *httperrors.AppError {
	switch {
	case repository.IsInvalidInput(err):
		return httperrors.ErrUnprocessableEntity.WithDetail(err.Error())
	case repository.IsNotFound(err):
		return httperrors.ErrNotFound
	case repository.IsPermissionDenied(err):
		return httperrors.ErrForbidden.WithDetail(err.Error())
	case repository.IsConflict(err):
		return httperrors.ErrConflict.WithCause(err)
	default:
		return httperrors.ErrInternalServerError.WithCause(err)
	}
}
