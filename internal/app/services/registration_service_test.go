package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsounjou2-stack/inscription-concours/internal/app/models"
	"github.com/nsounjou2-stack/inscription-concours/internal/app/models/dto"
	"github.com/nsounjou2-stack/inscription-concours/internal/pkg/apperrors"
)

// fakeStore is an in-memory RegistrationStore recording the arguments the
// service passes down.
type fakeStore struct {
	regs   map[int64]*models.Registration
	nextID int64

	// Forces the next N Create calls to fail with a unique violation
	uniqueFailures int

	lastUpdates       map[string]interface{}
	lastPaymentStatus models.PaymentStatus
	lastPaymentRef    *string
	lastPaymentAmount *int64
	lastPaymentDate   *time.Time
	searchCalled      bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{regs: make(map[int64]*models.Registration)}
}

func (f *fakeStore) Create(_ context.Context, reg *models.Registration) error {
	if f.uniqueFailures > 0 {
		f.uniqueFailures--
		return &pgconn.PgError{Code: "23505", ConstraintName: "registrations_registration_number_key"}
	}
	f.nextID++
	reg.ID = f.nextID
	reg.CreatedAt = time.Now()
	reg.UpdatedAt = reg.CreatedAt
	stored := *reg
	f.regs[reg.ID] = &stored
	return nil
}

func (f *fakeStore) GetByID(_ context.Context, id int64) (*models.Registration, error) {
	reg, ok := f.regs[id]
	if !ok {
		return nil, apperrors.ErrRegistrationNotFound
	}
	found := *reg
	return &found, nil
}

func (f *fakeStore) List(_ context.Context, _ dto.ListFilter, offset uint64, limit int) ([]models.Registration, int64, error) {
	all := make([]models.Registration, 0, len(f.regs))
	for _, reg := range f.regs {
		all = append(all, *reg)
	}
	total := int64(len(all))
	if offset >= uint64(len(all)) {
		return []models.Registration{}, total, nil
	}
	end := int(offset) + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (f *fakeStore) Update(_ context.Context, id int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return apperrors.ErrNoFieldsToUpdate
	}
	if _, ok := f.regs[id]; !ok {
		return apperrors.ErrRegistrationNotFound
	}
	f.lastUpdates = updates
	return nil
}

func (f *fakeStore) UpdatePayment(_ context.Context, id int64, status models.PaymentStatus, reference *string, amount *int64, date *time.Time) (*models.Registration, error) {
	reg, ok := f.regs[id]
	if !ok {
		return nil, apperrors.ErrRegistrationNotFound
	}
	f.lastPaymentStatus = status
	f.lastPaymentRef = reference
	f.lastPaymentAmount = amount
	f.lastPaymentDate = date

	reg.PaymentStatus = status
	if reference != nil {
		reg.PaymentReference = reference
	}
	if amount != nil {
		reg.PaymentAmount = amount
	}
	if date != nil {
		reg.PaymentDate = date
	}
	updated := *reg
	return &updated, nil
}

func (f *fakeStore) BulkUpdatePayment(_ context.Context, ids []int64, status models.PaymentStatus, date *time.Time) (int64, error) {
	f.lastPaymentStatus = status
	f.lastPaymentDate = date
	var updated int64
	for _, id := range ids {
		if reg, ok := f.regs[id]; ok {
			reg.PaymentStatus = status
			if date != nil {
				reg.PaymentDate = date
			}
			updated++
		}
	}
	return updated, nil
}

func (f *fakeStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.regs[id]; !ok {
		return apperrors.ErrRegistrationNotFound
	}
	delete(f.regs, id)
	return nil
}

func (f *fakeStore) Search(_ context.Context, term string) ([]models.Registration, error) {
	f.searchCalled = true
	return []models.Registration{}, nil
}

func (f *fakeStore) GetStats(_ context.Context) (*models.RegistrationStats, error) {
	return &models.RegistrationStats{Total: int64(len(f.regs))}, nil
}

// fakeSettings serves a fixed fee, or ErrSettingsNotFound when absent.
type fakeSettings struct {
	settings *models.ContestSettings
}

func (f *fakeSettings) Get(_ context.Context) (*models.ContestSettings, error) {
	if f.settings == nil {
		return nil, apperrors.ErrSettingsNotFound
	}
	return f.settings, nil
}

func (f *fakeSettings) Upsert(_ context.Context, settings *models.ContestSettings) error {
	f.settings = settings
	return nil
}

func newTestService(store *fakeStore, settings *fakeSettings) *RegistrationService {
	return NewRegistrationService(store, settings, 25000, zerolog.Nop())
}

func validCreateRequest() *dto.CreateRegistrationRequest {
	return &dto.CreateRegistrationRequest{
		FirstName:  "Amina",
		LastName:   "Ngo Bell",
		BirthDate:  "2005-03-12",
		BirthPlace: "Douala",
		Gender:     "F",
		Phone:      "+237 690 112 233",
		Email:      "amina@example.cm",
		City:       "Yaoundé",
		Department: "Mfoundi",
		Region:     "Centre",

		BacDate:    "2024-07-01",
		BacSeries:  "C",
		BacMention: "Bien",
		BacType:    "Général",

		ProbDate:    "2023-07-01",
		ProbSeries:  "C",
		ProbMention: "Assez Bien",
		ProbType:    "Général",

		FatherName: "Jean Mbarga",
		MotherName: "Claire Mbarga",

		PhotoURL: "http://localhost:8080/uploads/photos/3f2a.jpg",
	}
}

func mustCreate(t *testing.T, svc *RegistrationService) *models.Registration {
	t.Helper()
	reg, verrs, err := svc.CreateRegistration(context.Background(), validCreateRequest())
	require.NoError(t, err)
	require.Nil(t, verrs)
	require.NotNil(t, reg)
	return reg
}

var registrationNumberPattern = regexp.MustCompile(`^REG\d{4}\d{5}$`)

func TestCreateRegistration(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeSettings{})

	reg := mustCreate(t, svc)

	assert.Equal(t, int64(1), reg.ID)
	assert.Equal(t, models.PaymentPending, reg.PaymentStatus)
	assert.Regexp(t, registrationNumberPattern, reg.RegistrationNumber)
	assert.Nil(t, reg.PaymentAmount)
	assert.Nil(t, reg.PaymentDate)
}

func TestCreateRegistration_ValidationFailure(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeSettings{})

	req := validCreateRequest()
	req.Gender = "X"

	reg, verrs, err := svc.CreateRegistration(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, reg)
	require.NotNil(t, verrs)
	assert.True(t, verrs.HasErrors())
	assert.Empty(t, store.regs, "nothing persisted on validation failure")
}

func TestCreateRegistration_RetriesOnNumberCollision(t *testing.T) {
	store := newFakeStore()
	store.uniqueFailures = 2
	svc := newTestService(store, &fakeSettings{})

	reg := mustCreate(t, svc)
	assert.NotEmpty(t, reg.RegistrationNumber)
	assert.Len(t, store.regs, 1)
}

func TestCreateRegistration_GivesUpAfterRepeatedCollisions(t *testing.T) {
	store := newFakeStore()
	store.uniqueFailures = 3
	svc := newTestService(store, &fakeSettings{})

	_, verrs, err := svc.CreateRegistration(context.Background(), validCreateRequest())
	assert.Nil(t, verrs)
	assert.ErrorIs(t, err, apperrors.ErrRegistrationNumberGen)
}

func TestUpdatePayment_CompletedDefaultsAmountAndDate(t *testing.T) {
	store := newFakeStore()
	settings := &fakeSettings{settings: &models.ContestSettings{RegistrationFee: 30000}}
	svc := newTestService(store, settings)
	reg := mustCreate(t, svc)

	updated, err := svc.UpdatePayment(context.Background(), reg.ID, &dto.UpdatePaymentRequest{
		PaymentStatus: "completed",
	})
	require.NoError(t, err)

	assert.Equal(t, models.PaymentCompleted, updated.PaymentStatus)
	require.NotNil(t, store.lastPaymentAmount)
	assert.Equal(t, int64(30000), *store.lastPaymentAmount, "amount defaults to the configured fee")
	require.NotNil(t, store.lastPaymentDate)
	assert.WithinDuration(t, time.Now(), *store.lastPaymentDate, time.Minute)
}

func TestUpdatePayment_CompletedFallsBackToDefaultFee(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeSettings{}) // no settings row
	reg := mustCreate(t, svc)

	_, err := svc.UpdatePayment(context.Background(), reg.ID, &dto.UpdatePaymentRequest{
		PaymentStatus: "completed",
	})
	require.NoError(t, err)
	require.NotNil(t, store.lastPaymentAmount)
	assert.Equal(t, int64(25000), *store.lastPaymentAmount)
}

func TestUpdatePayment_ExplicitValuesKept(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeSettings{})
	reg := mustCreate(t, svc)

	ref := "PAY-8fa3c1"
	amount := int64(12500)
	date := "2026-02-10T12:00:00Z"
	_, err := svc.UpdatePayment(context.Background(), reg.ID, &dto.UpdatePaymentRequest{
		PaymentStatus:    "completed",
		PaymentReference: &ref,
		PaymentAmount:    &amount,
		PaymentDate:      &date,
	})
	require.NoError(t, err)

	require.NotNil(t, store.lastPaymentRef)
	assert.Equal(t, "PAY-8fa3c1", *store.lastPaymentRef)
	require.NotNil(t, store.lastPaymentAmount)
	assert.Equal(t, int64(12500), *store.lastPaymentAmount)
	require.NotNil(t, store.lastPaymentDate)
	assert.Equal(t, time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC), store.lastPaymentDate.UTC())
}

func TestUpdatePayment_FailedLeavesDateAlone(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeSettings{})
	reg := mustCreate(t, svc)

	updated, err := svc.UpdatePayment(context.Background(), reg.ID, &dto.UpdatePaymentRequest{
		PaymentStatus: "failed",
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentFailed, updated.PaymentStatus)
	assert.Nil(t, store.lastPaymentDate)
	assert.Nil(t, store.lastPaymentAmount)
}

func TestUpdatePayment_InvalidStatus(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeSettings{})
	reg := mustCreate(t, svc)

	_, err := svc.UpdatePayment(context.Background(), reg.ID, &dto.UpdatePaymentRequest{
		PaymentStatus: "paid",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidPaymentStatus)
}

func TestUpdatePayment_BadDate(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeSettings{})
	reg := mustCreate(t, svc)

	bad := "tomorrow"
	_, err := svc.UpdatePayment(context.Background(), reg.ID, &dto.UpdatePaymentRequest{
		PaymentStatus: "completed",
		PaymentDate:   &bad,
	})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestUpdatePayment_NotFound(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeSettings{})

	_, err := svc.UpdatePayment(context.Background(), 99, &dto.UpdatePaymentRequest{
		PaymentStatus: "pending",
	})
	assert.ErrorIs(t, err, apperrors.ErrRegistrationNotFound)
}

func TestBulkUpdatePayment(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeSettings{})
	first := mustCreate(t, svc)
	second := mustCreate(t, svc)

	updated, err := svc.BulkUpdatePayment(context.Background(), &dto.BulkPaymentRequest{
		IDs:           []int64{first.ID, second.ID, 999}, // unknown IDs are skipped
		PaymentStatus: "completed",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)
	require.NotNil(t, store.lastPaymentDate, "completed transitions get a timestamp")
}

func TestUpdateRegistration(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeSettings{})
	reg := mustCreate(t, svc)

	city := "Douala"
	updated, verrs, err := svc.UpdateRegistration(context.Background(), reg.ID, &dto.UpdateRegistrationRequest{
		City: &city,
	})
	require.NoError(t, err)
	require.Nil(t, verrs)
	require.NotNil(t, updated)

	assert.Equal(t, map[string]interface{}{"city": "Douala"}, store.lastUpdates)
}

func TestUpdateRegistration_ClearedOptionalFieldsStoreNull(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeSettings{})
	reg := mustCreate(t, svc)

	empty := ""
	profession := "Enseignante"
	_, verrs, err := svc.UpdateRegistration(context.Background(), reg.ID, &dto.UpdateRegistrationRequest{
		GuardianPhone:    &empty,
		MotherProfession: &profession,
	})
	require.NoError(t, err)
	require.Nil(t, verrs)

	assert.Equal(t, map[string]interface{}{
		"guardian_phone":    nil,
		"mother_profession": "Enseignante",
	}, store.lastUpdates)
}

func TestUpdateRegistration_MergedRecordMustStayValid(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeSettings{})
	reg := mustCreate(t, svc)

	// Moving the region without its department breaks the pairing
	region := "Littoral"
	_, verrs, err := svc.UpdateRegistration(context.Background(), reg.ID, &dto.UpdateRegistrationRequest{
		Region: &region,
	})
	require.NoError(t, err)
	require.NotNil(t, verrs)
	assert.True(t, verrs.HasErrors())
	assert.Nil(t, store.lastUpdates, "invalid edit never reaches the store")
}

func TestUpdateRegistration_NoFields(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeSettings{})
	reg := mustCreate(t, svc)

	_, _, err := svc.UpdateRegistration(context.Background(), reg.ID, &dto.UpdateRegistrationRequest{})
	assert.ErrorIs(t, err, apperrors.ErrNoFieldsToUpdate)
}

func TestUpdateRegistration_NotFound(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeSettings{})

	name := "Nouveau Nom"
	_, _, err := svc.UpdateRegistration(context.Background(), 42, &dto.UpdateRegistrationRequest{
		FirstName: &name,
	})
	assert.ErrorIs(t, err, apperrors.ErrRegistrationNotFound)
}

func TestDeleteRegistration(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeSettings{})
	reg := mustCreate(t, svc)

	require.NoError(t, svc.DeleteRegistration(context.Background(), reg.ID))
	assert.Empty(t, store.regs)

	err := svc.DeleteRegistration(context.Background(), reg.ID)
	assert.ErrorIs(t, err, apperrors.ErrRegistrationNotFound)
}

func TestSearchRegistrations_BlankTermSkipsStore(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeSettings{})

	results, err := svc.SearchRegistrations(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.False(t, store.searchCalled)
}

func TestListRegistrations_Pagination(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeSettings{})
	for i := 0; i < 3; i++ {
		mustCreate(t, svc)
	}

	list, err := svc.ListRegistrations(context.Background(), dto.ListFilter{}, 1, 2)
	require.NoError(t, err)
	assert.Len(t, list.Data, 2)
	assert.Equal(t, int64(3), list.Pagination.TotalItems)
	assert.Equal(t, 2, list.Pagination.TotalPages)

	// A page past the end still reports the real total
	list, err = svc.ListRegistrations(context.Background(), dto.ListFilter{}, 5, 2)
	require.NoError(t, err)
	assert.Empty(t, list.Data)
	assert.Equal(t, int64(3), list.Pagination.TotalItems)
	assert.Equal(t, 5, list.Pagination.CurrentPage)
}

func TestGenerateRegistrationNumber(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 50; i++ {
		number := generateRegistrationNumber(now)
		assert.Regexp(t, `^REG2026\d{5}$`, number)
	}
}
