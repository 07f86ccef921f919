package handlers

import (
	"errors"
	"net/http"

	"github.com/gymbros-app/backend/internal/gymbros"
	"github.com/labstack/echo/v4"
)

// domainHTTPError maps core errors onto HTTP statuses. Transient store
// failures and anything unrecognized become a 500.
func domainHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, gymbros.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, gymbros.ErrSelfRequest), errors.Is(err, gymbros.ErrInvalidCodeFormat):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, gymbros.ErrDuplicateRequest),
		errors.Is(err, gymbros.ErrAlreadyFriends),
		errors.Is(err, gymbros.ErrAlreadyResolved):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, gymbros.ErrCodeSpaceExhausted):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
