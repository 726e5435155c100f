package models

import "time"

// Machine-readable error codes returned in the "error.code" field of API
// responses. Clients are expected to branch on these, not on message text.
const (
	CodeValidationError    = "VALIDATION_ERROR"
	CodeEmailExists        = "EMAIL_EXISTS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeInternalError      = "INTERNAL_ERROR"
)

// ResponseMeta accompanies every API response, success or failure.
type ResponseMeta struct {
	// RequestID is the correlation identifier assigned to the request by the
	// request-id middleware. Distinct per request.
	RequestID string `json:"request_id"`

	// Timestamp is the server time at which the response was produced.
	Timestamp time.Time `json:"timestamp"`
}

// APIError is the uniform failure payload: a machine-readable code, a
// human-readable message, and optional structured details (e.g. per-field
// validation errors).
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse is the envelope for failed requests.
type ErrorResponse struct {
	Error APIError     `json:"error"`
	Meta  ResponseMeta `json:"meta"`
}

// DataResponse is the envelope for successful requests.
type DataResponse struct {
	Data any          `json:"data"`
	Meta ResponseMeta `json:"meta"`
}

// LoginResult is the payload of a successful login: the session token and
// the public projection of the account it was issued for.
type LoginResult struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// RegisterResult is the payload of a successful registration.
type RegisterResult struct {
	User PublicUser `json:"user"`
}

// MessageResult is a payload carrying a single human-readable status message,
// used by endpoints that have no entity to return (e.g. logout).
type MessageResult struct {
	Message string `json:"message"`
}

// FieldError describes a single failed validation rule for one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
