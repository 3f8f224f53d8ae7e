package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/nsounjou2-stack/inscription-concours/internal/app/models"
	"github.com/nsounjou2-stack/inscription-concours/internal/app/models/dto"
	"github.com/nsounjou2-stack/inscription-concours/internal/app/validation"
	"github.com/nsounjou2-stack/inscription-concours/internal/pkg/apperrors"
	"github.com/nsounjou2-stack/inscription-concours/internal/pkg/dberrors"
	"github.com/nsounjou2-stack/inscription-concours/internal/pkg/helpers"
)

// registrationNumberAttempts bounds the retry loop when a freshly generated
// number collides with an existing one.
const registrationNumberAttempts = 3

// RegistrationStore is the persistence contract the service works against.
type RegistrationStore interface {
	Create(ctx context.Context, reg *models.Registration) error
	GetByID(ctx context.Context, id int64) (*models.Registration, error)
	List(ctx context.Context, filter dto.ListFilter, offset uint64, limit int) ([]models.Registration, int64, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) error
	UpdatePayment(ctx context.Context, id int64, status models.PaymentStatus, reference *string, amount *int64, date *time.Time) (*models.Registration, error)
	BulkUpdatePayment(ctx context.Context, ids []int64, status models.PaymentStatus, date *time.Time) (int64, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, term string) ([]models.Registration, error)
	GetStats(ctx context.Context) (*models.RegistrationStats, error)
}

// SettingsStore provides the contest settings needed for fee defaulting.
type SettingsStore interface {
	Get(ctx context.Context) (*models.ContestSettings, error)
	Upsert(ctx context.Context, settings *models.ContestSettings) error
}

// RegistrationService handles the registration lifecycle: validated creation,
// admin edits, payment transitions and dashboard queries.
type RegistrationService struct {
	store      RegistrationStore
	settings   SettingsStore
	defaultFee int64 // FCFA fallback when no settings row exists yet
	logger     zerolog.Logger
}

// NewRegistrationService creates a new RegistrationService
func NewRegistrationService(store RegistrationStore, settings SettingsStore, defaultFee int64, logger zerolog.Logger) *RegistrationService {
	return &RegistrationService{
		store:      store,
		settings:   settings,
		defaultFee: defaultFee,
		logger:     logger,
	}
}

// generateRegistrationNumber builds a human-facing code: "REG", the current
// year, then five random digits (e.g. REG202600042).
func generateRegistrationNumber(now time.Time) string {
	return fmt.Sprintf("REG%d%05d", now.Year(), rand.Intn(100000))
}

// CreateRegistration validates the submission and persists it with a fresh
// registration number. Validation failures come back as the field-scoped
// error list, not as an error.
func (s *RegistrationService) CreateRegistration(ctx context.Context, req *dto.CreateRegistrationRequest) (*models.Registration, *dto.ValidationErrors, error) {
	reg, verrs := validation.ValidateRegistration(req, time.Now())
	if verrs != nil {
		return nil, verrs, nil
	}

	for attempt := 0; attempt < registrationNumberAttempts; attempt++ {
		reg.RegistrationNumber = generateRegistrationNumber(time.Now())

		err := s.store.Create(ctx, reg)
		if err == nil {
			s.logger.Info().
				Int64("id", reg.ID).
				Str("registrationNumber", reg.RegistrationNumber).
				Msg("Registration created")
			return reg, nil, nil
		}
		if dberrors.IsUniqueViolation(err) {
			s.logger.Warn().
				Str("registrationNumber", reg.RegistrationNumber).
				Msg("Registration number collision, retrying")
			continue
		}
		return nil, nil, err
	}

	return nil, nil, apperrors.ErrRegistrationNumberGen
}

// GetRegistration retrieves one registration by ID.
func (s *RegistrationService) GetRegistration(ctx context.Context, id int64) (*models.Registration, error) {
	return s.store.GetByID(ctx, id)
}

// ListRegistrations returns a filtered, paginated page of registrations.
func (s *RegistrationService) ListRegistrations(ctx context.Context, filter dto.ListFilter, page, limit int) (*dto.RegistrationListResponse, error) {
	offset, size := helpers.CalculateOffsetLimit(page, limit)

	registrations, total, err := s.store.List(ctx, filter, offset, size)
	if err != nil {
		return nil, err
	}

	return &dto.RegistrationListResponse{
		Data:       registrations,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}, nil
}

// UpdateRegistration applies a partial admin edit. The merged record must
// still satisfy the full rule set, so an edit can never corrupt a valid
// registration.
func (s *RegistrationService) UpdateRegistration(ctx context.Context, id int64, req *dto.UpdateRegistrationRequest) (*models.Registration, *dto.ValidationErrors, error) {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	merged := mergeIntoCreateRequest(existing, req)
	if _, verrs := validation.ValidateRegistration(merged, time.Now()); verrs != nil {
		return nil, verrs, nil
	}

	updates := buildUpdateMap(req)
	if err := s.store.Update(ctx, id, updates); err != nil {
		return nil, nil, err
	}

	updated, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info().Int64("id", id).Int("fields", len(updates)).Msg("Registration updated")
	return updated, nil, nil
}

// UpdatePayment applies a payment-status transition to one registration.
// Completing a payment without an amount charges the configured registration
// fee; completing without a date stamps the current time.
func (s *RegistrationService) UpdatePayment(ctx context.Context, id int64, req *dto.UpdatePaymentRequest) (*models.Registration, error) {
	status := models.PaymentStatus(req.PaymentStatus)
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidPaymentStatus
	}

	paymentDate, err := parseOptionalTime(req.PaymentDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("paymentDate must be a valid date")
	}

	amount := req.PaymentAmount
	if status == models.PaymentCompleted {
		if amount == nil {
			fee := s.registrationFee(ctx)
			amount = &fee
		}
		if paymentDate == nil {
			now := time.Now()
			paymentDate = &now
		}
	}

	reg, err := s.store.UpdatePayment(ctx, id, status, req.PaymentReference, amount, paymentDate)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("id", id).
		Str("paymentStatus", string(status)).
		Msg("Payment status updated")
	return reg, nil
}

// BulkUpdatePayment applies one status transition to several registrations
// and returns how many rows changed.
func (s *RegistrationService) BulkUpdatePayment(ctx context.Context, req *dto.BulkPaymentRequest) (int64, error) {
	status := models.PaymentStatus(req.PaymentStatus)
	if !status.IsValid() {
		return 0, apperrors.ErrInvalidPaymentStatus
	}

	paymentDate, err := parseOptionalTime(req.PaymentDate)
	if err != nil {
		return 0, apperrors.NewBadRequestError("paymentDate must be a valid date")
	}
	if status == models.PaymentCompleted && paymentDate == nil {
		now := time.Now()
		paymentDate = &now
	}

	updated, err := s.store.BulkUpdatePayment(ctx, req.IDs, status, paymentDate)
	if err != nil {
		return 0, err
	}

	s.logger.Info().
		Int("requested", len(req.IDs)).
		Int64("updated", updated).
		Str("paymentStatus", string(status)).
		Msg("Bulk payment update applied")
	return updated, nil
}

// DeleteRegistration removes a registration permanently.
func (s *RegistrationService) DeleteRegistration(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("id", id).Msg("Registration deleted")
	return nil
}

// SearchRegistrations performs the dashboard quick search. A blank term
// returns no results without touching the database.
func (s *RegistrationService) SearchRegistrations(ctx context.Context, term string) ([]models.Registration, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []models.Registration{}, nil
	}
	return s.store.Search(ctx, term)
}

// GetStats returns the dashboard aggregates.
func (s *RegistrationService) GetStats(ctx context.Context) (*models.RegistrationStats, error) {
	return s.store.GetStats(ctx)
}

// registrationFee reads the configured fee, falling back to the default when
// no settings row exists yet.
func (s *RegistrationService) registrationFee(ctx context.Context) int64 {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return s.defaultFee
	}
	return settings.RegistrationFee
}

// parseOptionalTime accepts RFC3339 timestamps and plain calendar dates.
func parseOptionalTime(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, *value); err == nil {
		return &t, nil
	}
	t, err := time.Parse(validation.DateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// mergeIntoCreateRequest overlays the edit request on the stored record so
// the merged result can run through the same validation pipeline as a fresh
// submission.
func mergeIntoCreateRequest(existing *models.Registration, req *dto.UpdateRegistrationRequest) *dto.CreateRegistrationRequest {
	merged := &dto.CreateRegistrationRequest{
		FirstName:  orString(req.FirstName, existing.FirstName),
		LastName:   orString(req.LastName, existing.LastName),
		BirthDate:  orString(req.BirthDate, existing.BirthDate.Format(validation.DateLayout)),
		BirthPlace: orString(req.BirthPlace, existing.BirthPlace),
		Gender:     orString(req.Gender, string(existing.Gender)),
		Phone:      orString(req.Phone, existing.Phone),
		Email:      orString(req.Email, existing.Email),
		City:       orString(req.City, existing.City),
		Department: orString(req.Department, existing.Department),
		Region:     orString(req.Region, existing.Region),
		Country:    orString(req.Country, existing.Country),

		BacDate:    orString(req.BacDate, existing.Bac.Date.Format(validation.DateLayout)),
		BacSeries:  orString(req.BacSeries, existing.Bac.Series),
		BacMention: orString(req.BacMention, existing.Bac.Mention),
		BacType:    orString(req.BacType, existing.Bac.Type),
		BacFileURL: existing.Bac.FileURL,

		ProbDate:    orString(req.ProbDate, existing.Prob.Date.Format(validation.DateLayout)),
		ProbSeries:  orString(req.ProbSeries, existing.Prob.Series),
		ProbMention: orString(req.ProbMention, existing.Prob.Mention),
		ProbType:    orString(req.ProbType, existing.Prob.Type),
		ProbFileURL: existing.Prob.FileURL,

		FatherName:       orString(req.FatherName, existing.Father.Name),
		FatherProfession: orPtr(req.FatherProfession, existing.Father.Profession),
		FatherPhone:      orPtr(req.FatherPhone, existing.Father.Phone),
		MotherName:       orString(req.MotherName, existing.Mother.Name),
		MotherProfession: orPtr(req.MotherProfession, existing.Mother.Profession),
		MotherPhone:      orPtr(req.MotherPhone, existing.Mother.Phone),
		GuardianName:     orPtr(req.GuardianName, existing.Guardian.Name),
		GuardianRelation: orPtr(req.GuardianRelation, existing.Guardian.Relation),
		GuardianPhone:    orPtr(req.GuardianPhone, existing.Guardian.Phone),

		PhotoURL: orString(req.PhotoURL, existing.PhotoURL),
	}
	return merged
}

// buildUpdateMap translates the provided fields of an edit request into their
// column assignments. Dates reach the database as parsed time values.
func buildUpdateMap(req *dto.UpdateRegistrationRequest) map[string]interface{} {
	updates := make(map[string]interface{})

	setString := func(column string, value *string) {
		if value != nil {
			updates[column] = *value
		}
	}
	// Optional columns are nullable; clearing one stores NULL, matching what
	// the create path writes for an absent value.
	setOptional := func(column string, value *string) {
		if value == nil {
			return
		}
		if *value == "" {
			updates[column] = nil
			return
		}
		updates[column] = *value
	}
	setDate := func(column string, value *string) {
		if value != nil {
			// Validation already proved the date parses
			t, _ := time.Parse(validation.DateLayout, *value)
			updates[column] = t
		}
	}

	setString("first_name", req.FirstName)
	setString("last_name", req.LastName)
	setDate("birth_date", req.BirthDate)
	setString("birth_place", req.BirthPlace)
	setString("gender", req.Gender)
	setString("phone", req.Phone)
	setString("email", req.Email)
	setString("city", req.City)
	setString("department", req.Department)
	setString("region", req.Region)
	setString("country", req.Country)

	setDate("bac_date", req.BacDate)
	setString("bac_series", req.BacSeries)
	setString("bac_mention", req.BacMention)
	setString("bac_type", req.BacType)

	setDate("prob_date", req.ProbDate)
	setString("prob_series", req.ProbSeries)
	setString("prob_mention", req.ProbMention)
	setString("prob_type", req.ProbType)

	setString("father_name", req.FatherName)
	setOptional("father_profession", req.FatherProfession)
	setOptional("father_phone", req.FatherPhone)
	setString("mother_name", req.MotherName)
	setOptional("mother_profession", req.MotherProfession)
	setOptional("mother_phone", req.MotherPhone)
	setOptional("guardian_name", req.GuardianName)
	setOptional("guardian_relation", req.GuardianRelation)
	setOptional("guardian_phone", req.GuardianPhone)

	setString("photo_url", req.PhotoURL)

	return updates
}

func orString(override *string, current string) string {
	if override != nil {
		return *override
	}
	return current
}

func orPtr(override, current *string) *string {
	if override != nil {
		return override
	}
	return current
}
