package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "this_is_a_very_long_secret_key_for_testing_purposes_12345"

func TestNewJWTManager(t *testing.T) {
	_, err := NewJWTManager("", time.Hour)
	assert.Error(t, err)

	m, err := NewJWTManager(testSecret, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultTokenTTL, m.ttl)
}

func TestGenerateAndValidateToken(t *testing.T) {
	m, err := NewJWTManager(testSecret, time.Hour)
	require.NoError(t, err)

	want := Principal{ID: 42, Email: "admin@example.com", Role: "admin"}
	token, err := m.GenerateToken(want)
	require.NoError(t, err)

	got, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.True(t, got.IsAdmin())
}

func TestValidateToken_Rejects(t *testing.T) {
	m, err := NewJWTManager(testSecret, time.Hour)
	require.NoError(t, err)

	other, err := NewJWTManager("another_secret_that_is_long_enough_too", time.Hour)
	require.NoError(t, err)
	foreign, err := other.GenerateToken(Principal{ID: 1, Role: "admin"})
	require.NoError(t, err)

	expiring, err := NewJWTManager(testSecret, time.Hour)
	require.NoError(t, err)
	expiring.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := expiring.GenerateToken(Principal{ID: 1, Role: "admin"})
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1, Role: "admin"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "empty", token: ""},
		{name: "wrong secret", token: foreign},
		{name: "expired", token: expired},
		{name: "none algorithm", token: unsigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.ValidateToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestCheckPassword(t *testing.T) {
	hashed, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, IsHashed(hashed))

	tests := []struct {
		name      string
		stored    string
		candidate string
		want      bool
	}{
		{name: "bcrypt match", stored: hashed, candidate: "s3cret", want: true},
		{name: "bcrypt mismatch", stored: hashed, candidate: "nope", want: false},
		{name: "legacy plaintext match", stored: "s3cret", candidate: "s3cret", want: true},
		{name: "legacy plaintext mismatch", stored: "s3cret", candidate: "s3cre", want: false},
		{name: "empty stored", stored: "", candidate: "x", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckPassword(tt.stored, tt.candidate))
		})
	}
}
