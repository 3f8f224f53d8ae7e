package services

import (
	"context"
	"fmt"
	"time"
	"unicode"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/nsounjou2-stack/inscription-concours/internal/app/models"
	"github.com/nsounjou2-stack/inscription-concours/internal/app/models/dto"
	"github.com/nsounjou2-stack/inscription-concours/internal/pkg/apperrors"
	"github.com/nsounjou2-stack/inscription-concours/internal/pkg/auth"
)

// AdminStore is the persistence contract for administrator accounts.
type AdminStore interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByID(ctx context.Context, id int64) (*models.Admin, error)
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, id int64) error
}

// TokenStore holds the opaque refresh tokens.
type TokenStore interface {
	StoreRefreshToken(ctx context.Context, adminID int64, token string, expiresAt time.Time) error
	GetRefreshToken(ctx context.Context, token string) (int64, error)
	DeleteRefreshToken(ctx context.Context, token string) error
	DeleteTokensForAdmin(ctx context.Context, adminID int64) error
}

// AuthService handles administrator authentication
type AuthService struct {
	adminRepo  AdminStore
	tokenRepo  TokenStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	adminRepo AdminStore,
	tokenRepo TokenStore,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// validatePassword checks if password meets requirements
func validatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters long", apperrors.ErrValidationFailed)
	}

	hasLetter := false
	hasDigit := false
	for _, char := range password {
		if unicode.IsLetter(char) {
			hasLetter = true
		}
		if unicode.IsDigit(char) {
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return fmt.Errorf("%w: password must contain at least one letter and one digit", apperrors.ErrValidationFailed)
	}

	return nil
}

// Login verifies credentials and issues a token pair. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Warn().Str("email", req.Email).Msg("Login attempt for unknown email")
		return nil, apperrors.ErrInvalidCredentials
	}

	if !admin.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		s.logger.Warn().Str("email", req.Email).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, admin)
	if err != nil {
		return nil, err
	}

	if err := s.adminRepo.UpdateLastLogin(ctx, admin.ID); err != nil {
		// Login still succeeds, the timestamp is informational
		s.logger.Warn().Err(err).Int64("adminId", admin.ID).Msg("Failed to record last login")
	}

	s.logger.Info().Int64("adminId", admin.ID).Msg("Admin logged in")
	return tokens, nil
}

// RefreshToken rotates a refresh token into a fresh token pair.
func (s *AuthService) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	adminID, err := s.tokenRepo.GetRefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, err
	}

	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, apperrors.ErrTokenInvalid
	}
	if !admin.IsActive {
		// A disabled account keeps no live sessions
		if err := s.tokenRepo.DeleteTokensForAdmin(ctx, admin.ID); err != nil {
			s.logger.Warn().Err(err).Int64("adminId", admin.ID).Msg("Failed to revoke tokens of disabled admin")
		}
		return nil, apperrors.ErrAccountDisabled
	}

	// Single-use: the old token dies with the rotation
	if err := s.tokenRepo.DeleteRefreshToken(ctx, req.RefreshToken); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, admin)
}

// RegisterAdmin creates an additional administrator account.
func (s *AuthService) RegisterAdmin(ctx context.Context, req *dto.RegisterAdminRequest) (*models.Admin, error) {
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	exists, err := s.adminRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		Email:    req.Email,
		Password: string(hash),
		FullName: req.FullName,
		IsActive: true,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("adminId", admin.ID).Str("email", admin.Email).Msg("Admin account created")
	return admin, nil
}

// Logout invalidates a refresh token.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenRepo.DeleteRefreshToken(ctx, refreshToken)
}

func (s *AuthService) issueTokens(ctx context.Context, admin *models.Admin) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(admin)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.StoreRefreshToken(ctx, admin.ID, refreshToken, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
	}, nil
}
