package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/portfolio-backend/internal/http/response"
	"github.com/yungbote/portfolio-backend/internal/pkg/logger"
)

// TokenValidator is the token-validation capability the gate delegates to.
// services.SessionService is the production implementation.
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) error
}

// SessionGate is a blanket guard over a set of request paths. It runs once
// per request, ahead of any handler, and knows nothing about which operation
// the downstream route performs: a guarded path either carries a valid
// session token or the request is rejected before dispatch.
type SessionGate struct {
	log       *logger.Logger
	validator TokenValidator
	guarded   func(path string) bool
}

func NewSessionGate(log *logger.Logger, validator TokenValidator, guarded func(path string) bool) *SessionGate {
	gateLog := log.With("Middleware", "SessionGate")
	return &SessionGate{log: gateLog, validator: validator, guarded: guarded}
}

// PathPrefix builds the guard predicate for one administrative prefix.
// Matching stops at a segment boundary: "/admin" guards "/admin" and
// "/admin/...", never "/administrator".
func PathPrefix(prefix string) func(path string) bool {
	return func(path string) bool {
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
}

func (g *SessionGate) Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !g.guarded(c.Request.URL.Path) {
			c.Next()
			return
		}
		tokenString := extractSessionToken(c)
		if tokenString == "" {
			g.reject(c, errors.New("missing or invalid session token"))
			return
		}
		if err := g.validator.ValidateToken(c.Request.Context(), tokenString); err != nil {
			g.log.Warn("Rejected admin request", "path", c.Request.URL.Path, "error", err)
			g.reject(c, errors.New("missing or invalid session token"))
			return
		}
		c.Next()
	}
}

func (g *SessionGate) reject(c *gin.Context, err error) {
	c.Abort()
	response.RespondError(c, http.StatusUnauthorized, "unauthorized", err)
}

// The login flow stores the token in the session cookie; Bearer and query
// transport are kept for curl-driven admin use.
func extractSessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie("session"); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	if qToken := c.Query("token"); qToken != "" {
		return qToken
	}
	return ""
}
