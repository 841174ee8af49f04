// Package auth issues and verifies session tokens and resolves the
// data-access role for a request. Tokens are stateless: there is no
// revocation list, so a leaked token stays valid until its 24h expiry.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"foodhub-api/models"
)

// TokenLifetime is how long an issued token stays valid. Expired tokens
// force a fresh login; there is no refresh mechanism.
const TokenLifetime = 24 * time.Hour

var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Identity is the verified subject of a session token.
type Identity struct {
	SubjectID uint
	Role      models.Role
}

type claims struct {
	SubjectID uint        `json:"sub_id"`
	Role      models.Role `json:"role"`
	jwt.RegisteredClaims
}

// Issue signs a session token for the given subject and role.
func Issue(secret []byte, subjectID uint, role models.Role) (string, error) {
	if !role.TokenRole() {
		return "", errors.New("role not issuable in a token: " + string(role))
	}
	now := time.Now().UTC()
	c := claims{
		SubjectID: subjectID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(secret)
}

// Verify checks signature, claims and expiry, and returns the embedded
// identity. It fails closed: every malformed, tampered or incomplete token
// yields ErrTokenInvalid, and only a past expiry yields ErrTokenExpired.
func Verify(secret []byte, tokenStr string) (*Identity, error) {
	c := &claims{}
	token, err := jwt.ParseWithClaims(tokenStr, c, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid || c.SubjectID == 0 || !c.Role.TokenRole() {
		return nil, ErrTokenInvalid
	}
	return &Identity{SubjectID: c.SubjectID, Role: c.Role}, nil
}
