package services

import (
	"errors"
	"net/http"
)

// Business-rule error kinds. Handlers translate these into the matching
// HTTP status and a user-facing notice; wrapped causes carry the
// detail.
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflicting record")
	ErrForbidden  = errors.New("operation not permitted")
	ErrNotFound   = errors.New("record not found")
)

// HTTPStatus maps a business-rule error onto its response status.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
