package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vikass-pal/campusconnect/internal/app/models"
	"github.com/vikass-pal/campusconnect/internal/pkg/apperrors"
)

func testService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "campusconnect.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testService(time.Hour)
	user := &models.User{ID: "u1", Email: "alice@university.edu", Username: "alice_chen", IsAdmin: true}

	token, expiresIn, err := svc.GenerateToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateAndExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "alice_chen", claims.Username)
	assert.Equal(t, "alice@university.edu", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "campusconnect.test", claims.Issuer)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := testService(-time.Minute)
	token, _, err := svc.GenerateToken(&models.User{ID: "u1"})
	require.NoError(t, err)

	_, err = svc.ValidateAndExtractClaims(token)
	assert.True(t, errors.Is(err, apperrors.ErrTokenExpired))
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := testService(time.Hour).GenerateToken(&models.User{ID: "u1"})
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "different", AccessTokenExp: time.Hour})
	_, err = other.ValidateAndExtractClaims(token)
	assert.True(t, errors.Is(err, apperrors.ErrTokenInvalid))
}

func TestValidateToken_Malformed(t *testing.T) {
	_, err := testService(time.Hour).ValidateAndExtractClaims("not-a-token")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidFormat))
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{"valid header", "Bearer abc.def.ghi", "abc.def.ghi", nil},
		{"case-insensitive scheme", "bearer abc", "abc", nil},
		{"empty header", "", "", apperrors.ErrTokenInvalid},
		{"wrong scheme", "Basic abc", "", apperrors.ErrInvalidFormat},
		{"missing token", "Bearer", "", apperrors.ErrInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
