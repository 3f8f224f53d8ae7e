package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/nsounjou2-stack/inscription-concours/internal/app/models"
	appRepos "github.com/nsounjou2-stack/inscription-concours/internal/app/repositories"
	"github.com/nsounjou2-stack/inscription-concours/internal/config"
	"github.com/nsounjou2-stack/inscription-concours/internal/pkg/apperrors"
)

// CreateDefaultData creates the default admin account and contest settings row
// so the dashboard is reachable right after a fresh deployment.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	adminRepo := appRepos.NewAdminRepository(dbPool)
	settingsRepo := appRepos.NewSettingsRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (admin account, contest settings)...")
	var finalErr error

	// --- Default admin account --- //
	count, err := adminRepo.CountAdmins(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting admin accounts")
		finalErr = errors.Join(finalErr, err)
	} else if count == 0 {
		if cfg.Admin.DefaultPassword == "" {
			lgr.Warn().Msg("No admin accounts exist and ADMIN_DEFAULT_PASSWORD is not set, skipping admin seed")
		} else {
			hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.DefaultPassword), bcrypt.DefaultCost)
			if err != nil {
				lgr.Error().Err(err).Msg("Error hashing default admin password")
				finalErr = errors.Join(finalErr, err)
			} else {
				admin := &appModels.Admin{
					Email:    cfg.Admin.DefaultEmail,
					Password: string(hash),
					FullName: "Administrateur",
					IsActive: true,
				}
				if err := adminRepo.Create(ctx, admin); err != nil {
					lgr.Error().Err(err).Msg("Error creating default admin account")
					finalErr = errors.Join(finalErr, err)
				} else {
					lgr.Info().Str("email", admin.Email).Msg("Default admin account created")
				}
			}
		}
	}

	// --- Contest settings row --- //
	if _, err := settingsRepo.Get(ctx); err != nil {
		if errors.Is(err, apperrors.ErrSettingsNotFound) {
			settings := &appModels.ContestSettings{
				RegistrationFee: cfg.Contest.RegistrationFee,
			}
			if err := settingsRepo.Upsert(ctx, settings); err != nil {
				lgr.Error().Err(err).Msg("Error creating default contest settings")
				finalErr = errors.Join(finalErr, err)
			} else {
				lgr.Info().Int64("registrationFee", settings.RegistrationFee).Msg("Default contest settings created")
			}
		} else {
			lgr.Error().Err(err).Msg("Error checking contest settings")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
