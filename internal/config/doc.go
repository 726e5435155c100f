// Package config provides configuration loading, merging, and validation
// facilities for the auth service.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]. Validation enforces the
// startup invariants that have no safe default: the token signing secret and
// the database DSN.
package config
