package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	manager := NewManager("test-secret")
	userID := uuid.New().String()

	token, err := manager.GenerateSessionToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.WithinDuration(t, time.Now().Add(SessionDuration), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateSessionTokenWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a").GenerateSessionToken(uuid.New().String())
	require.NoError(t, err)

	_, err = NewManager("secret-b").ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestValidateSessionTokenExpired(t *testing.T) {
	manager := NewManager("test-secret")

	claims := Claims{
		UserID: uuid.New().String(),
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = manager.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestValidateSessionTokenGarbage(t *testing.T) {
	manager := NewManager("test-secret")

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := manager.ValidateSessionToken(token)
		assert.Error(t, err, "token %q", token)
	}
}

func TestValidateSessionTokenMissingUserID(t *testing.T) {
	manager := NewManager("test-secret")

	claims := Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = manager.ValidateSessionToken(token)
	assert.Error(t, err)
}
