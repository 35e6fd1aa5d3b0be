package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeDatabaseError, "db", "query failed", http.StatusInternalServerError)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "query failed")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestMarshalJSONHidesInternals(t *testing.T) {
	err := Wrap(errors.New("secret cause"), CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)

	raw, mErr := json.Marshal(err)
	require.NoError(t, mErr)

	assert.NotContains(t, string(raw), "secret cause")
	assert.NotContains(t, string(raw), "500")
	assert.Contains(t, string(raw), string(CodeInternalError))
}

func TestAsAppError(t *testing.T) {
	var appErr *AppError
	assert.True(t, As(NewBadRequestError("nope"), &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)

	appErr = nil
	assert.False(t, As(errors.New("plain"), &appErr))
}

func TestErrTagQuotaReached(t *testing.T) {
	err := ErrTagQuotaReached("GOLD", 1)

	assert.Equal(t, CodeLimitExceeded, err.Code)
	assert.Equal(t, http.StatusConflict, err.HTTPCode)

	details, ok := err.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "GOLD", details["tier"])
	assert.Equal(t, 1, details["quota"])
}

func TestDomainErrorStatuses(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, ErrInvalidCredentials.HTTPCode)
	assert.Equal(t, http.StatusConflict, ErrEmailAlreadyExists.HTTPCode)
	assert.Equal(t, http.StatusNotFound, ErrCreatorNotFound.HTTPCode)
	assert.Equal(t, http.StatusConflict, ErrDuplicateApplication.HTTPCode)
}
