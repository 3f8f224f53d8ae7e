package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/nsounjou2-stack/inscription-concours/internal/app/models"
	"github.com/nsounjou2-stack/inscription-concours/internal/app/models/dto"
	"github.com/nsounjou2-stack/inscription-concours/internal/app/validation"
	"github.com/nsounjou2-stack/inscription-concours/internal/pkg/apperrors"
)

// SettingsService manages the single-row contest configuration.
type SettingsService struct {
	store       SettingsStore
	defaultFee  int64
	currency    string
	contestName string
	logger      zerolog.Logger
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(store SettingsStore, defaultFee int64, currency, contestName string, logger zerolog.Logger) *SettingsService {
	return &SettingsService{
		store:       store,
		defaultFee:  defaultFee,
		currency:    currency,
		contestName: contestName,
		logger:      logger,
	}
}

// GetSettings returns the current contest settings. Before the first explicit
// update the configured default fee is served.
func (s *SettingsService) GetSettings(ctx context.Context) (*dto.ContestSettingsResponse, error) {
	settings, err := s.currentSettings(ctx)
	if err != nil {
		return nil, err
	}
	return s.describe(settings), nil
}

func (s *SettingsService) currentSettings(ctx context.Context) (*models.ContestSettings, error) {
	settings, err := s.store.Get(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrSettingsNotFound) {
			return &models.ContestSettings{
				ID:              1,
				RegistrationFee: s.defaultFee,
			}, nil
		}
		return nil, err
	}
	return settings, nil
}

func (s *SettingsService) describe(settings *models.ContestSettings) *dto.ContestSettingsResponse {
	return &dto.ContestSettingsResponse{
		ContestSettings: *settings,
		ContestName:     s.contestName,
		Currency:        s.currency,
	}
}

// UpdateSettings applies a partial settings update and returns the new state.
func (s *SettingsService) UpdateSettings(ctx context.Context, req *dto.UpdateContestSettingsRequest) (*dto.ContestSettingsResponse, error) {
	settings, err := s.currentSettings(ctx)
	if err != nil {
		return nil, err
	}

	if req.ContestDate != nil {
		if *req.ContestDate == "" {
			settings.ContestDate = nil
		} else {
			date, err := time.Parse(validation.DateLayout, *req.ContestDate)
			if err != nil {
				return nil, apperrors.NewBadRequestError("contestDate must be a valid date (YYYY-MM-DD)")
			}
			settings.ContestDate = &date
		}
	}
	if req.ContestLocation != nil {
		settings.ContestLocation = req.ContestLocation
	}
	if req.RegistrationFee != nil {
		if *req.RegistrationFee < 0 {
			return nil, apperrors.NewBadRequestError("registrationFee cannot be negative")
		}
		settings.RegistrationFee = *req.RegistrationFee
	}

	if err := s.store.Upsert(ctx, settings); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("registrationFee", settings.RegistrationFee).Msg("Contest settings updated")
	return s.describe(settings), nil
}
