package models

// RegisterRequest is the JSON body of POST /api/v1/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest is the JSON body of POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the JSON body of PATCH /api/v1/users/me.
// Only the display name can be changed; email and credentials are immutable
// through this endpoint.
type UpdateProfileRequest struct {
	Name string `json:"name"`
}
