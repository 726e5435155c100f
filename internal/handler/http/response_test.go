package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibeqa/auth-service/models"
)

func TestWriteData_Envelope(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), requestIDCtxKey, "req-123")
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()

	writeData(rec, req, http.StatusOK, models.MessageResult{Message: "ok"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var response struct {
		Data models.MessageResult `json:"data"`
		Meta models.ResponseMeta  `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "ok", response.Data.Message)
	assert.Equal(t, "req-123", response.Meta.RequestID)
	assert.False(t, response.Meta.Timestamp.IsZero())
}

func TestWriteError_OmitsNilDetails(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	writeError(rec, req, http.StatusUnauthorized, models.CodeUnauthorized, "Missing authentication token", nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotContains(t, rec.Body.String(), "details")

	response := decodeErrorResponse(t, rec)
	assert.Equal(t, models.CodeUnauthorized, response.Error.Code)
	assert.Equal(t, "Missing authentication token", response.Error.Message)
}

func TestWriteValidationError_CarriesFieldDetails(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	writeValidationError(rec, req, []models.FieldError{
		{Field: "email", Message: "invalid email format"},
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"email"`)
	assert.Contains(t, rec.Body.String(), "invalid email format")
}
