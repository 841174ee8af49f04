package middleware

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"foodhub-api/apperr"
	"foodhub-api/auth"
	"foodhub-api/config"
	"foodhub-api/db"
)

const dbKey = "dbSession"

// SessionRouter binds the database session matching the request's resolved
// role into the context, exactly once, before any handler touches storage.
// The bound handle is request-scoped and released with the context when the
// request completes, so no request can leak an elevated session into the
// next one. A role without a configured session fails the request with a
// server error; it never falls back to a more privileged credential.
func SessionRouter(sessions *db.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := auth.ResolveRole(config.JWTSecret, c.Request.URL.Path, BearerToken(c))
		dbh, err := sessions.ForRole(role)
		if err != nil {
			apperr.Abort(c, err)
			return
		}
		c.Set(dbKey, dbh.WithContext(c.Request.Context()))
		c.Next()
	}
}

// DB returns the role-bound session for this request. Handlers reach
// storage only through it.
func DB(c *gin.Context) *gorm.DB {
	val, _ := c.Get(dbKey)
	dbh, _ := val.(*gorm.DB)
	return dbh
}
