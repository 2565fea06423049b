package auth

import (
	"testing"
	"time"

	"contacts/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(testConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := svc.Issue("JSMITH", []string{"ROLE_CONTACTS_ADMIN"}, time.Minute)
	require.NoError(t, err)

	principal, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "JSMITH", principal.Username)
	assert.Equal(t, []string{"ROLE_CONTACTS_ADMIN"}, principal.Roles)
}

func TestJWTService_Verify_FallsBackToSubject(t *testing.T) {
	secret := "another_secret"
	svc, err := NewJWTService(testConfig(secret))
	require.NoError(t, err)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "client-credentials",
		"roles": []string{"ROLE_CONTACTS_MIGRATION"},
		"exp":   time.Now().Add(time.Minute).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	principal, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "client-credentials", principal.Username)
	assert.Equal(t, []string{"ROLE_CONTACTS_MIGRATION"}, principal.Roles)
}

func TestJWTService_Verify_Rejects(t *testing.T) {
	svc, err := NewJWTService(testConfig("right_secret"))
	require.NoError(t, err)
	other, err := NewJWTService(testConfig("wrong_secret"))
	require.NoError(t, err)

	wrongSignature, err := other.Issue("JSMITH", nil, time.Minute)
	require.NoError(t, err)
	expired, err := svc.Issue("JSMITH", nil, -time.Minute)
	require.NoError(t, err)
	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "JSMITH"}).SignedString([]byte("right_secret"))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"wrong signature": wrongSignature,
		"expired":         expired,
		"no expiry":       noExpiry,
		"garbage":         "not-a-token",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(testConfig(""))

	assert.Error(t, err)
}
