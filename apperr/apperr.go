// Package apperr defines the error taxonomy shared by guards, the session
// router and the handlers. Guard functions return these values explicitly
// instead of panicking, so callers compose them with early returns.
package apperr

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Kind int

const (
	// AuthRequired: token missing, malformed, unverifiable or expired.
	AuthRequired Kind = iota
	// Forbidden: authenticated, but wrong role or not the resource owner.
	Forbidden
	// NotFound: resource absent.
	NotFound
	// Validation: missing or malformed input fields, enumerated by name.
	Validation
	// Conflict: username/email collision on signup.
	Conflict
	// TxAborted: any failure during the order header+lines transaction.
	TxAborted
	// Config: no credential set for a resolved role. Fatal, never retried.
	Config
	// Internal: any other storage or infrastructure failure. Cause is
	// logged, body stays opaque.
	Internal
)

type Error struct {
	Kind    Kind
	Message string
	Fields  []string // populated for Validation
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Status maps the error kind to its HTTP status. Conflict maps to 400, not
// 409: duplicate signup has always been reported as a bad request on this
// API and clients depend on it.
func (e *Error) Status() int {
	switch e.Kind {
	case AuthRequired:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Validation, Conflict:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap keeps the internal cause for logging while presenting only message
// to the caller.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// MissingFields builds a Validation error naming every missing field, not
// just the first one found.
func MissingFields(fields ...string) *Error {
	return &Error{
		Kind:    Validation,
		Message: "missing required fields: " + strings.Join(fields, ", "),
		Fields:  fields,
	}
}

// Respond writes err as a JSON error response. Internal kinds (TxAborted,
// Config) log their cause and return an opaque body so storage details
// never leak to the client.
func Respond(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		log.Printf("unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	switch e.Kind {
	case TxAborted, Config, Internal:
		log.Printf("%s on %s %s: %v", kindName(e.Kind), c.Request.Method, c.Request.URL.Path, e)
		c.JSON(e.Status(), gin.H{"error": e.Message})
	case Validation:
		body := gin.H{"error": e.Message}
		if len(e.Fields) > 0 {
			body["fields"] = e.Fields
		}
		c.JSON(e.Status(), body)
	default:
		c.JSON(e.Status(), gin.H{"error": e.Message})
	}
}

// Abort responds with err and stops the middleware chain.
func Abort(c *gin.Context, err error) {
	Respond(c, err)
	c.Abort()
}

func kindName(k Kind) string {
	switch k {
	case AuthRequired:
		return "authentication required"
	case Forbidden:
		return "authorization denied"
	case NotFound:
		return "not found"
	case Validation:
		return "validation failed"
	case Conflict:
		return "duplicate conflict"
	case TxAborted:
		return "transaction aborted"
	case Config:
		return "configuration error"
	case Internal:
		return "internal error"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}
