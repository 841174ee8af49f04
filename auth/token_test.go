package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodhub-api/models"
)

var testSecret = []byte("test-secret")

func TestIssueVerifyRoundTrip(t *testing.T) {
	for _, role := range []models.Role{models.RoleCustomer, models.RoleRestaurant, models.RoleAdmin} {
		token, err := Issue(testSecret, 42, role)
		require.NoError(t, err, "issue for %s", role)

		id, err := Verify(testSecret, token)
		require.NoError(t, err, "verify for %s", role)
		assert.Equal(t, uint(42), id.SubjectID)
		assert.Equal(t, role, id.Role)
	}
}

func TestIssueRejectsNonTokenRoles(t *testing.T) {
	for _, role := range []models.Role{models.RoleGuest, models.RoleAuthenticator, "bogus"} {
		_, err := Issue(testSecret, 1, role)
		assert.Error(t, err, "role %s", role)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	token := signedToken(t, testSecret, jwt.SigningMethodHS256, claims{
		SubjectID: 7,
		Role:      models.RoleCustomer,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
		},
	})

	_, err := Verify(testSecret, token)
	assert.ErrorIs(t, err, ErrTokenExpired, "past expiry must be Expired, not any other kind")
}

func TestVerifyFailsClosed(t *testing.T) {
	valid, err := Issue(testSecret, 7, models.RoleCustomer)
	require.NoError(t, err)

	futureExp := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	cases := map[string]string{
		"garbage":      "not.a.token",
		"empty":        "",
		"wrong secret": signedToken(t, []byte("other-secret"), jwt.SigningMethodHS256, claims{SubjectID: 7, Role: models.RoleCustomer, RegisteredClaims: futureExp}),
		"wrong alg":    signedToken(t, testSecret, jwt.SigningMethodHS384, claims{SubjectID: 7, Role: models.RoleCustomer, RegisteredClaims: futureExp}),
		"no subject":   signedToken(t, testSecret, jwt.SigningMethodHS256, claims{Role: models.RoleCustomer, RegisteredClaims: futureExp}),
		"no role":      signedToken(t, testSecret, jwt.SigningMethodHS256, claims{SubjectID: 7, RegisteredClaims: futureExp}),
		"guest role":   signedToken(t, testSecret, jwt.SigningMethodHS256, claims{SubjectID: 7, Role: models.RoleGuest, RegisteredClaims: futureExp}),
		"no expiry":    signedToken(t, testSecret, jwt.SigningMethodHS256, claims{SubjectID: 7, Role: models.RoleCustomer}),
		"truncated":    valid[:len(valid)-4],
	}
	for name, token := range cases {
		_, err := Verify(testSecret, token)
		assert.ErrorIs(t, err, ErrTokenInvalid, name)
	}
}

func signedToken(t *testing.T, secret []byte, method jwt.SigningMethod, c claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, c).SignedString(secret)
	require.NoError(t, err)
	return token
}
