package config

import (
	"os"
	"strings"

	"foodhub-api/apperr"
	"foodhub-api/models"
)

// Credentials maps each role to its database DSN. The sets are immutable,
// process-wide, read-only configuration; strictly least-privilege grants
// are expected on the database side (guest read-only, customer and
// restaurant limited to their own tables, authenticator allowed to insert
// principal rows).
type Credentials map[models.Role]string

// LoadCredentials reads one DSN per role from DB_DSN_<ROLE>, with DB_DSN as
// a shared fallback for development setups that use a single sqlite file.
func LoadCredentials() Credentials {
	fallback := os.Getenv("DB_DSN")
	if fallback == "" {
		fallback = getEnv("DB_PATH", "foodhub.db")
	}
	creds := Credentials{}
	for _, role := range models.SessionRoles {
		key := "DB_DSN_" + strings.ToUpper(string(role))
		if dsn := os.Getenv(key); dsn != "" {
			creds[role] = dsn
		} else if fallback != "" {
			creds[role] = fallback
		}
	}
	return creds
}

// ForRole returns the DSN for a role. A resolved role with no credential is
// a configuration error; it must surface as a server failure and never fall
// back to a more privileged set.
func (c Credentials) ForRole(role models.Role) (string, error) {
	dsn, ok := c[role]
	if !ok || dsn == "" {
		return "", apperr.New(apperr.Config, "no database credential configured for role "+string(role))
	}
	return dsn, nil
}
