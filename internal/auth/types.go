package auth

// SignInRequest is the admin login payload.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries the issued access token.
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
}

// MeResponse identifies the authenticated admin.
type MeResponse struct {
	Email string `json:"email"`
}
