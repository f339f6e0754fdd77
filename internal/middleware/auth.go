package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"basketlens/internal/models"
)

// SessionUserKey is the session key holding the signed-in username.
const SessionUserKey = "username"

// UserStore looks up users for the session.
type UserStore interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthMiddleware handles user authentication via sessions.
type AuthMiddleware struct {
	users UserStore
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(users UserStore) *AuthMiddleware {
	return &AuthMiddleware{users: users}
}

// RequireAuth ensures the user is authenticated, redirecting to /login if not.
// The requested path is remembered so login can send the user back.
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	user, sess := m.loadUser(c)
	if user == nil {
		if sess != nil {
			sess.Set("redirect_after_login", c.OriginalURL())
		}
		return c.Redirect().To("/login")
	}

	c.Locals("user", user)
	return c.Next()
}

// RequireAPIAuth ensures the user is authenticated, answering 401 JSON if not.
func (m *AuthMiddleware) RequireAPIAuth(c fiber.Ctx) error {
	user, _ := m.loadUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status": "error",
			"error":  "authentication required",
		})
	}

	c.Locals("user", user)
	return c.Next()
}

// OptionalAuth loads the user if authenticated, but doesn't require authentication.
func (m *AuthMiddleware) OptionalAuth(c fiber.Ctx) error {
	if user, _ := m.loadUser(c); user != nil {
		c.Locals("user", user)
	}
	return c.Next()
}

// loadUser resolves the session user. A session naming a user that no longer
// exists is destroyed.
func (m *AuthMiddleware) loadUser(c fiber.Ctx) (*models.User, *session.Middleware) {
	sess := session.FromContext(c)
	if sess == nil {
		return nil, nil
	}

	username, ok := sess.Get(SessionUserKey).(string)
	if !ok || username == "" {
		return nil, sess
	}

	user, err := m.users.GetUserByUsername(c.Context(), username)
	if err != nil {
		sess.Destroy()
		return nil, nil
	}

	return user, sess
}
