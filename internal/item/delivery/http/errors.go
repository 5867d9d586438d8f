package http

import (
	"errors"
	"net/http"

	"notes-api/internal/item"
	pkgErrors "notes-api/pkg/errors"
)

var errInvalidID = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid item id")

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, item.ErrItemNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, item.ErrItemNotFound.Error())
	case errors.Is(err, item.ErrOwnerRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, item.ErrOwnerRequired.Error())
	case errors.Is(err, item.ErrOwnerConstraint):
		return pkgErrors.NewHTTPError(http.StatusConflict, item.ErrOwnerConstraint.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
