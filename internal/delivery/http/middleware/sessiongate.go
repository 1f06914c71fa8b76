package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/horecaseek-service/internal/pkg/token"
)

// LocalUserID is the ctx-locals key carrying the authenticated user id.
// Handlers read it via UserID(c); absence means no valid session.
const LocalUserID = "user_id"

// LoginPath is where anonymous callers of the protected area are sent.
// The original navigation carries no return path, so neither does this.
const LoginPath = "/auth/login"

// AccessCookie is the cookie the gate accepts alongside the bearer header,
// so plain browser navigation works.
const AccessCookie = "access_token"

// Decision is the gate's verdict for one request.
type Decision int

const (
	Allow Decision = iota
	RedirectToLogin
)

// publicExact - paths anyone may open, matched exactly.
var publicExact = map[string]struct{}{
	"/":            {},
	"/hotels":      {},
	"/spots":       {},
	"/bars":        {},
	"/restaurants": {},
	"/traiteurs":   {},
	"/search":      {},
}

// publicPrefixes - path prefixes anyone may open.
var publicPrefixes = []string{"/login", "/auth"}

const protectedPrefix = "/protected"

// IsPublic reports whether a path is in the public set: the exact pages
// plus the login/auth prefixes.
func IsPublic(path string) bool {
	if _, ok := publicExact[path]; ok {
		return true
	}
	for _, p := range publicPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// IsProtected reports whether a path lives under the protected area.
func IsProtected(path string) bool {
	return strings.HasPrefix(path, protectedPrefix)
}

// Authorize decides one request: a protected, non-public path without a
// session redirects to login; everything else passes. Pure so the gate's
// policy is testable without an HTTP stack.
func Authorize(path string, hasSession bool) Decision {
	if IsProtected(path) && !IsPublic(path) && !hasSession {
		return RedirectToLogin
	}
	return Allow
}

// SessionGate resolves the caller's session (bearer header first, then the
// access-token cookie), stores the user id in locals, and enforces
// Authorize at the edge. It never rejects on a bad token outside the
// protected area; the request simply proceeds anonymous.
func SessionGate(jwtSecret string, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if raw := extractToken(c); raw != "" {
			userID, err := token.ParseAccessToken(jwtSecret, raw)
			if err != nil {
				logger.Debug("Rejected access token", zap.String("path", c.Path()), zap.Error(err))
			} else {
				c.Locals(LocalUserID, userID)
			}
		}

		if Authorize(c.Path(), UserID(c) != "") == RedirectToLogin {
			return c.Redirect(LoginPath, fiber.StatusFound)
		}
		return c.Next()
	}
}

// UserID returns the authenticated user id from locals, empty when the
// request carries no valid session.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalUserID).(string)
	return id
}

func extractToken(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return c.Cookies(AccessCookie)
}
