package dto

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@concours.cm"`
	Password string `json:"password" binding:"required,min=8" example:"Concours2026!"`
}

// RegisterAdminRequest creates an additional dashboard administrator.
type RegisterAdminRequest struct {
	Email    string `json:"email" binding:"required,email" example:"reviewer@concours.cm"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName" binding:"required,min=2" example:"Marie Atangana"`
}

// RefreshTokenRequest exchanges a refresh token for a new access token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries an issued session.
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int    `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int    `json:"refreshExpiresIn" example:"2592000"`
}
