package models

// AuthenticatedIdentity is the minimal identity attached to a request after
// successful token verification. It is derived from token claims, never
// stored, and lives for exactly one request.
type AuthenticatedIdentity struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
}
