package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SyedqaderEng/financeOS-sub001/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		kind   string
	}{
		{"invalid argument", fmt.Errorf("%w: amount must be greater than zero", service.ErrInvalidArgument), http.StatusBadRequest, "invalid_argument"},
		{"not found", fmt.Errorf("%w: goal", service.ErrNotFound), http.StatusNotFound, "not_found"},
		{"permission denied", service.ErrPermissionDenied, http.StatusForbidden, "permission_denied"},
		{"unauthenticated", service.ErrInvalidCredentials, http.StatusUnauthorized, "unauthenticated"},
		{"conflict", service.ErrEmailAlreadyExists, http.StatusConflict, "conflict"},
		{"storage", fmt.Errorf("%w: save goal: %w", service.ErrStorage, errors.New("database is locked")), http.StatusServiceUnavailable, "storage_failure"},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError, "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/goals", nil)

			writeError(w, r, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var body errorBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.kind, body.Error.Kind)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestWriteError_StorageHidesCause(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/goals/1/contributions", nil)

	writeError(w, r, fmt.Errorf("%w: append contribution: %w", service.ErrStorage, errors.New("SQLITE_BUSY")))

	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	assert.NotContains(t, w.Body.String(), "SQLITE_BUSY")
	assert.Contains(t, w.Body.String(), "please retry")
}

func TestDecodeJSON(t *testing.T) {
	var dst contributeRequest

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"amount":"12.345","notes":"rent"}`))
	require.NoError(t, decodeJSON(httptest.NewRecorder(), r, &dst))
	assert.Equal(t, "12.35", dst.Amount.String())
	assert.Equal(t, "rent", dst.Notes)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"amount":`))
	err := decodeJSON(httptest.NewRecorder(), r, &dst)
	assert.ErrorIs(t, err, service.ErrInvalidArgument)
}
