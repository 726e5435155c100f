// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"time"

	"github.com/vibeqa/auth-service/internal/logger"
	"github.com/vibeqa/auth-service/internal/utils"
	"github.com/vibeqa/auth-service/models"
)

// ctxKey is a private type for context keys set by this package's middleware.
type ctxKey string

// requestIDCtxKey is where withRequestID stores the per-request correlation
// identifier, so the response writers can echo it in the "meta" block.
const requestIDCtxKey = ctxKey("request_id")

// requestIDFromContext returns the correlation id assigned by withRequestID,
// or an empty string when the middleware did not run (e.g. in isolated
// handler tests).
func requestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDCtxKey).(string)
	return requestID
}

// newResponseMeta builds the meta block attached to every response envelope.
func newResponseMeta(r *http.Request) models.ResponseMeta {
	return models.ResponseMeta{
		RequestID: requestIDFromContext(r.Context()),
		Timestamp: time.Now().UTC(),
	}
}

// writeData writes a success envelope {data, meta} with the given status code.
func writeData(w http.ResponseWriter, r *http.Request, statusCode int, data any) {
	response := models.DataResponse{
		Data: data,
		Meta: newResponseMeta(r),
	}

	if _, err := utils.WriteJSON(w, response, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing success response")
	}
}

// writeError writes a failure envelope {error: {code, message, details}, meta}
// with the given status code. details may be nil; it is omitted from the JSON
// output in that case.
func writeError(w http.ResponseWriter, r *http.Request, statusCode int, code, message string, details any) {
	response := models.ErrorResponse{
		Error: models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
		Meta: newResponseMeta(r),
	}

	if _, err := utils.WriteJSON(w, response, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing error response")
	}
}

// writeValidationError writes the standard 400 VALIDATION_ERROR envelope with
// per-field details.
func writeValidationError(w http.ResponseWriter, r *http.Request, fieldErrors []models.FieldError) {
	writeError(w, r, http.StatusBadRequest, models.CodeValidationError, "Invalid request data", fieldErrors)
}

// writeInternalError writes the uniform 500 INTERNAL_ERROR envelope.
// The underlying error is logged, never sent to the client.
func writeInternalError(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusInternalServerError, models.CodeInternalError, "Internal server error", nil)
}
