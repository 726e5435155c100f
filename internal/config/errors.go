// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Sentinel errors returned by config validation. Each one marks a startup
// invariant that has no safe default.
var (
	// ErrMissingTokenSignKey is returned when no token signing secret was
	// provided by any configuration source. The server must not start with
	// a fallback secret: tokens signed with a well-known key are forgeable.
	ErrMissingTokenSignKey = errors.New("token sign key is required and has no default")

	// ErrMissingDatabaseDSN is returned when no database connection string
	// was provided by any configuration source.
	ErrMissingDatabaseDSN = errors.New("database DSN is required")
)
