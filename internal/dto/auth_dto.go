package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type AdminResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type LoginResponse struct {
	Token     string        `json:"token"`
	TokenType string        `json:"token_type"`
	ExpiresIn int           `json:"expires_in"` // seconds
	Admin     AdminResponse `json:"admin"`
}

// SeedResponse is returned by GET /api/seed.
type SeedResponse struct {
	Email string `json:"email"`
	Hint  string `json:"hint,omitempty"`
}

// AdminStatusResponse is returned by GET /api/check-admin.
type AdminStatusResponse struct {
	Exists  bool   `json:"exists"`
	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`
	Message string `json:"message"`
}
