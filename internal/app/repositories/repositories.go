package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	RegistrationRepository *RegistrationRepository
	AdminRepository        *AdminRepository
	TokenRepository        *TokenRepository
	SettingsRepository     *SettingsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		RegistrationRepository: NewRegistrationRepository(db),
		AdminRepository:        NewAdminRepository(db),
		TokenRepository:        NewTokenRepository(db),
		SettingsRepository:     NewSettingsRepository(db),
	}
}
