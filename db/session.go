// Package db owns the role-bound gorm sessions. One session pool is opened
// per configured credential set at startup; the session router middleware
// hands the matching pool to each request through its context, so there is
// no process-global mutable database handle.
package db

import (
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"foodhub-api/apperr"
	"foodhub-api/config"
	"foodhub-api/models"
)

// Sessions holds one gorm handle per role. Immutable after Open; safe for
// concurrent use.
type Sessions struct {
	byRole map[models.Role]*gorm.DB
}

// Open connects every role's credential set. Roles sharing a DSN share the
// underlying pool. Any missing credential fails startup outright.
func Open(creds config.Credentials) (*Sessions, error) {
	s := &Sessions{byRole: make(map[models.Role]*gorm.DB, len(models.SessionRoles))}
	pools := map[string]*gorm.DB{}
	for _, role := range models.SessionRoles {
		dsn, err := creds.ForRole(role)
		if err != nil {
			return nil, err
		}
		if pool, ok := pools[dsn]; ok {
			s.byRole[role] = pool
			continue
		}
		pool, err := gorm.Open(dialectorFor(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err != nil {
			return nil, apperr.Wrap(apperr.Config, "failed to connect database for role "+string(role), err)
		}
		pools[dsn] = pool
		s.byRole[role] = pool
	}
	return s, nil
}

// dialectorFor picks the gorm driver from the DSN shape: postgres URLs and
// keyword DSNs go to the postgres driver, anything else is a sqlite path.
func dialectorFor(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=") {
		return postgres.Open(dsn)
	}
	return sqlite.Open(dsn)
}

// ForRole returns the session bound to role's credential set.
func (s *Sessions) ForRole(role models.Role) (*gorm.DB, error) {
	pool, ok := s.byRole[role]
	if !ok {
		return nil, apperr.New(apperr.Config, "no database session for role "+string(role))
	}
	return pool, nil
}

// Migrate runs schema migration on the admin session.
func (s *Sessions) Migrate() error {
	admin, err := s.ForRole(models.RoleAdmin)
	if err != nil {
		return err
	}
	return admin.AutoMigrate(
		&models.Customer{},
		&models.RestaurantOwner{},
		&models.Restaurant{},
		&models.Food{},
		&models.Photo{},
		&models.Order{},
		&models.OrderLine{},
		&models.Review{},
		&models.Address{},
		&models.Message{},
	)
}
