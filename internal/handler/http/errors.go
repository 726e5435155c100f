// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not have the exact "Bearer <token>" shape.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// Client-facing messages of the three authentication rejection reasons.
// All three are returned with identical status (401) and code (UNAUTHORIZED);
// the message is the only field that differs.
const (
	msgMissingAuthToken      = "Missing authentication token"
	msgInvalidAuthFormat     = "Invalid authorization format"
	msgInvalidOrExpiredToken = "Invalid or expired token"
)
