package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsounjou2-stack/inscription-concours/internal/app/models"
)

func newTestService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret-key",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "concours.test",
	})
}

func testAdmin() *models.Admin {
	return &models.Admin{
		ID:    7,
		Email: "admin@concours.cm",
	}
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := newTestService(time.Hour)

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(testAdmin())
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.Equal(t, 3600, expiresIn)
	assert.Equal(t, int((720 * time.Hour).Seconds()), refreshExpiresIn)

	claims, err := svc.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.AdminID)
	assert.Equal(t, "admin@concours.cm", claims.Email)
	assert.Equal(t, "concours.test", claims.Issuer)
}

func TestValidateToken_WrongKey(t *testing.T) {
	svc := newTestService(time.Hour)
	accessToken, _, _, _, err := svc.GenerateTokenPair(testAdmin())
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:       "different-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "concours.test",
	})

	_, err = other.ValidateToken(accessToken)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestService(-time.Minute)
	accessToken, _, _, _, err := svc.GenerateTokenPair(testAdmin())
	require.NoError(t, err)

	_, err = svc.ValidateToken(accessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := newTestService(time.Hour)
	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateAndExtractClaims(t *testing.T) {
	svc := newTestService(time.Hour)

	_, err := svc.ValidateAndExtractClaims("")
	assert.ErrorIs(t, err, ErrInvalidToken)

	accessToken, _, _, _, err := svc.GenerateTokenPair(testAdmin())
	require.NoError(t, err)

	claims, err := svc.ValidateAndExtractClaims(accessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.AdminID)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	// A bare token without the prefix is passed through unchanged
	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)
}

func TestGetRefreshTokenExpiry(t *testing.T) {
	svc := newTestService(time.Hour)
	expiry := svc.GetRefreshTokenExpiry()
	assert.WithinDuration(t, time.Now().Add(720*time.Hour), expiry, time.Minute)
}
