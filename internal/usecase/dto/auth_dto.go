package dto

// SignUpRequest - create a new account
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// SignUpResponse - the created user id. The confirmation code itself is
// delivered out of band (emailed); it never appears in the API response.
type SignUpResponse struct {
	UserID               string `json:"user_id"`
	ConfirmationRequired bool   `json:"confirmation_required"`
}

// LoginRequest - obtain a session
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse - access + refresh token pair
type SessionResponse struct {
	AccessToken      string `json:"access_token"`
	AccessExpiresAt  int64  `json:"access_expires_at"`
	RefreshToken     string `json:"refresh_token"`
	RefreshExpiresAt int64  `json:"refresh_expires_at"`
}

// RefreshRequest - rotate a refresh token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest - invalidate a refresh session
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// ConfirmRequest - verify a one-time confirmation code
type ConfirmRequest struct {
	TokenHash string `json:"token_hash" validate:"required"`
}
