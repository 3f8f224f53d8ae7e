package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nsounjou2-stack/inscription-concours/internal/app/models"
	"github.com/nsounjou2-stack/inscription-concours/internal/app/models/dto"
	"github.com/nsounjou2-stack/inscription-concours/internal/pkg/apperrors"
	"github.com/nsounjou2-stack/inscription-concours/internal/pkg/auth"
)

type fakeAdminStore struct {
	admins map[string]*models.Admin
	nextID int64
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{admins: make(map[string]*models.Admin)}
}

func (f *fakeAdminStore) Create(_ context.Context, admin *models.Admin) error {
	f.nextID++
	admin.ID = f.nextID
	f.admins[admin.Email] = admin
	return nil
}

func (f *fakeAdminStore) GetByID(_ context.Context, id int64) (*models.Admin, error) {
	for _, admin := range f.admins {
		if admin.ID == id {
			return admin, nil
		}
	}
	return nil, apperrors.ErrAdminNotFound
}

func (f *fakeAdminStore) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	admin, ok := f.admins[email]
	if !ok {
		return nil, apperrors.ErrAdminNotFound
	}
	return admin, nil
}

func (f *fakeAdminStore) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.admins[email]
	return ok, nil
}

func (f *fakeAdminStore) UpdateLastLogin(_ context.Context, id int64) error {
	for _, admin := range f.admins {
		if admin.ID == id {
			now := time.Now()
			admin.LastLoginAt = &now
			return nil
		}
	}
	return apperrors.ErrAdminNotFound
}

type fakeTokenStore struct {
	tokens map[string]int64
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]int64)}
}

func (f *fakeTokenStore) StoreRefreshToken(_ context.Context, adminID int64, token string, _ time.Time) error {
	f.tokens[token] = adminID
	return nil
}

func (f *fakeTokenStore) GetRefreshToken(_ context.Context, token string) (int64, error) {
	adminID, ok := f.tokens[token]
	if !ok {
		return 0, apperrors.ErrTokenInvalid
	}
	return adminID, nil
}

func (f *fakeTokenStore) DeleteRefreshToken(_ context.Context, token string) error {
	delete(f.tokens, token)
	return nil
}

func (f *fakeTokenStore) DeleteTokensForAdmin(_ context.Context, adminID int64) error {
	for token, owner := range f.tokens {
		if owner == adminID {
			delete(f.tokens, token)
		}
	}
	return nil
}

func newTestAuthService(admins *fakeAdminStore, tokens *fakeTokenStore) *AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret-key",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "concours.test",
	})
	return NewAuthService(admins, tokens, jwtService, zerolog.Nop())
}

func seedAdmin(t *testing.T, store *fakeAdminStore, email, password string, active bool) *models.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	admin := &models.Admin{Email: email, Password: string(hash), FullName: "Test Admin", IsActive: active}
	require.NoError(t, store.Create(context.Background(), admin))
	return admin
}

func TestLogin(t *testing.T) {
	admins := newFakeAdminStore()
	tokens := newFakeTokenStore()
	svc := newTestAuthService(admins, tokens)
	seedAdmin(t, admins, "admin@concours.cm", "concours2026", true)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@concours.cm",
		Password: "concours2026",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Contains(t, tokens.tokens, resp.RefreshToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	admins := newFakeAdminStore()
	svc := newTestAuthService(admins, newFakeTokenStore())
	seedAdmin(t, admins, "admin@concours.cm", "concours2026", true)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@concours.cm",
		Password: "wrong-password1",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestAuthService(newFakeAdminStore(), newFakeTokenStore())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@concours.cm",
		Password: "concours2026",
	})
	// Indistinguishable from a wrong password
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_DisabledAccount(t *testing.T) {
	admins := newFakeAdminStore()
	svc := newTestAuthService(admins, newFakeTokenStore())
	seedAdmin(t, admins, "admin@concours.cm", "concours2026", false)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@concours.cm",
		Password: "concours2026",
	})
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}

func TestRefreshToken_RotatesSingleUse(t *testing.T) {
	admins := newFakeAdminStore()
	tokens := newFakeTokenStore()
	svc := newTestAuthService(admins, tokens)
	seedAdmin(t, admins, "admin@concours.cm", "concours2026", true)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@concours.cm",
		Password: "concours2026",
	})
	require.NoError(t, err)

	rotated, err := svc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: resp.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, resp.RefreshToken, rotated.RefreshToken)

	// The consumed token is gone
	_, err = svc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestRefreshToken_DisabledAdminLosesAllSessions(t *testing.T) {
	admins := newFakeAdminStore()
	tokens := newFakeTokenStore()
	svc := newTestAuthService(admins, tokens)
	admin := seedAdmin(t, admins, "admin@concours.cm", "concours2026", true)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@concours.cm",
		Password: "concours2026",
	})
	require.NoError(t, err)
	require.Len(t, tokens.tokens, 1)

	admin.IsActive = false

	_, err = svc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
	assert.Empty(t, tokens.tokens, "every session of the disabled admin is revoked")
}

func TestRegisterAdmin(t *testing.T) {
	admins := newFakeAdminStore()
	svc := newTestAuthService(admins, newFakeTokenStore())

	admin, err := svc.RegisterAdmin(context.Background(), &dto.RegisterAdminRequest{
		Email:    "second@concours.cm",
		Password: "concours2026",
		FullName: "Second Admin",
	})
	require.NoError(t, err)
	assert.NotZero(t, admin.ID)
	assert.True(t, admin.IsActive)
	assert.NotEqual(t, "concours2026", admin.Password, "password stored hashed")

	_, err = svc.RegisterAdmin(context.Background(), &dto.RegisterAdminRequest{
		Email:    "second@concours.cm",
		Password: "concours2026",
		FullName: "Duplicate",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegisterAdmin_WeakPassword(t *testing.T) {
	svc := newTestAuthService(newFakeAdminStore(), newFakeTokenStore())

	_, err := svc.RegisterAdmin(context.Background(), &dto.RegisterAdminRequest{
		Email:    "weak@concours.cm",
		Password: "short",
		FullName: "Weak",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
