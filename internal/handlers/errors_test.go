package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gymbros-app/backend/internal/gymbros"
	"github.com/stretchr/testify/require"
)

func TestDomainHTTPErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{gymbros.ErrNotFound, http.StatusNotFound},
		{gymbros.ErrSelfRequest, http.StatusBadRequest},
		{gymbros.ErrInvalidCodeFormat, http.StatusBadRequest},
		{gymbros.ErrDuplicateRequest, http.StatusConflict},
		{gymbros.ErrAlreadyFriends, http.StatusConflict},
		{gymbros.ErrAlreadyResolved, http.StatusConflict},
		{gymbros.ErrCodeSpaceExhausted, http.StatusServiceUnavailable},
		{&gymbros.TransientError{Op: "find users", Err: errors.New("connection reset")}, http.StatusInternalServerError},
		{errors.New("something else"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		httpErr := domainHTTPError(tc.err)
		require.Equal(t, tc.status, httpErr.Code, "error %v", tc.err)
	}
}
