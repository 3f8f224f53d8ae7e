package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nsounjou2-stack/inscription-concours/internal/app/models"
	"github.com/nsounjou2-stack/inscription-concours/internal/pkg/apperrors"
)

// settingsRowID is the only row the contest_settings table ever holds.
const settingsRowID = 1

// SettingsRepository handles the single-row contest settings table
type SettingsRepository struct {
	db *pgxpool.Pool
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get retrieves the contest settings row.
func (r *SettingsRepository) Get(ctx context.Context) (*models.ContestSettings, error) {
	var settings models.ContestSettings
	err := r.db.QueryRow(ctx,
		"SELECT id, contest_date, contest_location, registration_fee, updated_at FROM contest_settings WHERE id = $1",
		settingsRowID).Scan(
		&settings.ID,
		&settings.ContestDate,
		&settings.ContestLocation,
		&settings.RegistrationFee,
		&settings.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("error retrieving contest settings: %w", err)
	}

	return &settings, nil
}

// Upsert writes the settings row, creating it on first use.
func (r *SettingsRepository) Upsert(ctx context.Context, settings *models.ContestSettings) error {
	query := squirrel.Insert("contest_settings").
		Columns("id", "contest_date", "contest_location", "registration_fee", "updated_at").
		Values(settingsRowID, settings.ContestDate, settings.ContestLocation, settings.RegistrationFee, squirrel.Expr("CURRENT_TIMESTAMP")).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			contest_date = EXCLUDED.contest_date,
			contest_location = EXCLUDED.contest_location,
			registration_fee = EXCLUDED.registration_fee,
			updated_at = CURRENT_TIMESTAMP
			RETURNING id, updated_at`).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&settings.ID, &settings.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error saving contest settings: %w", err)
	}

	return nil
}
