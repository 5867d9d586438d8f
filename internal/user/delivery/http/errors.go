package http

import (
	"errors"
	"net/http"

	"notes-api/internal/user"
	pkgErrors "notes-api/pkg/errors"
)

var errInvalidID = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid user id")

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, user.ErrUserNotFound.Error())
	case errors.Is(err, user.ErrDuplicateName):
		return pkgErrors.NewHTTPError(http.StatusConflict, user.ErrDuplicateName.Error())
	case errors.Is(err, user.ErrUserReferenced):
		return pkgErrors.NewHTTPError(http.StatusConflict, user.ErrUserReferenced.Error())
	case errors.Is(err, user.ErrWrongCredentials):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, user.ErrWrongCredentials.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
