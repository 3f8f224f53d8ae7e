package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsounjou2-stack/inscription-concours/internal/app/models"
	"github.com/nsounjou2-stack/inscription-concours/internal/app/models/dto"
	"github.com/nsounjou2-stack/inscription-concours/internal/pkg/apperrors"
)

func TestGetSettings_DefaultsBeforeFirstUpdate(t *testing.T) {
	svc := NewSettingsService(&fakeSettings{}, 25000, "FCFA", "Concours d'entrée", zerolog.Nop())

	settings, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), settings.ID)
	assert.Equal(t, int64(25000), settings.RegistrationFee)
	assert.Nil(t, settings.ContestDate)
	assert.Equal(t, "FCFA", settings.Currency)
	assert.Equal(t, "Concours d'entrée", settings.ContestName)
}

func TestGetSettings_ReturnsStoredRow(t *testing.T) {
	stored := &fakeSettings{settings: &models.ContestSettings{ID: 1, RegistrationFee: 30000}}
	svc := NewSettingsService(stored, 25000, "FCFA", "Concours d'entrée", zerolog.Nop())

	settings, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(30000), settings.RegistrationFee)
}

func TestUpdateSettings_PartialUpdate(t *testing.T) {
	store := &fakeSettings{}
	svc := NewSettingsService(store, 25000, "FCFA", "Concours d'entrée", zerolog.Nop())

	location := "Lycée Général Leclerc, Yaoundé"
	date := "2026-09-12"
	settings, err := svc.UpdateSettings(context.Background(), &dto.UpdateContestSettingsRequest{
		ContestDate:     &date,
		ContestLocation: &location,
	})
	require.NoError(t, err)

	require.NotNil(t, settings.ContestDate)
	assert.Equal(t, time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC), *settings.ContestDate)
	require.NotNil(t, settings.ContestLocation)
	assert.Equal(t, location, *settings.ContestLocation)
	assert.Equal(t, int64(25000), settings.RegistrationFee, "untouched fields keep their values")
	assert.NotNil(t, store.settings, "row persisted")
}

func TestUpdateSettings_ClearContestDate(t *testing.T) {
	existing := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	store := &fakeSettings{settings: &models.ContestSettings{ID: 1, ContestDate: &existing, RegistrationFee: 25000}}
	svc := NewSettingsService(store, 25000, "FCFA", "Concours d'entrée", zerolog.Nop())

	empty := ""
	settings, err := svc.UpdateSettings(context.Background(), &dto.UpdateContestSettingsRequest{
		ContestDate: &empty,
	})
	require.NoError(t, err)
	assert.Nil(t, settings.ContestDate)
}

func TestUpdateSettings_Rejections(t *testing.T) {
	svc := NewSettingsService(&fakeSettings{}, 25000, "FCFA", "Concours d'entrée", zerolog.Nop())

	bad := "12/09/2026"
	_, err := svc.UpdateSettings(context.Background(), &dto.UpdateContestSettingsRequest{ContestDate: &bad})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	negative := int64(-1)
	_, err = svc.UpdateSettings(context.Background(), &dto.UpdateContestSettingsRequest{RegistrationFee: &negative})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, validatePassword("concours2026"))

	for _, password := range []string{"short1", "onlyletters", "12345678"} {
		err := validatePassword(password)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed, password)
	}
}
