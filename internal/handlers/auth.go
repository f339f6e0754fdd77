package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"basketlens/internal/config"
	"basketlens/internal/db"
	"basketlens/internal/middleware"
	"basketlens/internal/models"
	"basketlens/internal/validation"
)

// afterLoginPath is where a login lands when no page was requested first.
const afterLoginPath = "/analysis"

// CredentialStore verifies username/password pairs.
type CredentialStore interface {
	VerifyCredentials(ctx context.Context, username, password string) (*models.User, error)
}

// AuthHandler handles the password login gate.
type AuthHandler struct {
	users CredentialStore
	cfg   *config.Config
}

// NewAuthHandler creates a new password auth handler.
func NewAuthHandler(users CredentialStore, cfg *config.Config) *AuthHandler {
	return &AuthHandler{users: users, cfg: cfg}
}

// LoginPage renders the login form.
func (h *AuthHandler) LoginPage(c fiber.Ctx) error {
	if sess := session.FromContext(c); sess != nil {
		if username, ok := sess.Get(middleware.SessionUserKey).(string); ok && username != "" {
			return c.Redirect().To(afterLoginPath)
		}
	}
	return c.Render("login", MergeBranding(fiber.Map{
		"Title": "Login",
	}, h.cfg))
}

// Login checks the posted credentials and starts a session.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}

	username := c.FormValue("username")
	if !validation.ValidateUsername(username) {
		return h.loginFailed(c, username)
	}

	user, err := h.users.VerifyCredentials(c.Context(), username, c.FormValue("password"))
	if errors.Is(err, db.ErrInvalidCredentials) {
		return h.loginFailed(c, username)
	}
	if err != nil {
		return err
	}

	startSession(sess, user.Username)
	return c.Redirect().To(takeRedirect(sess))
}

func (h *AuthHandler) loginFailed(c fiber.Ctx, username string) error {
	return c.Status(fiber.StatusUnauthorized).Render("login", MergeBranding(fiber.Map{
		"Title":    "Login",
		"Username": username,
		"Error":    "Invalid username or password.",
	}, h.cfg))
}

// Logout clears the user session.
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	if sess := session.FromContext(c); sess != nil {
		sess.Destroy()
	}
	return c.Redirect().To("/")
}

func startSession(sess *session.Middleware, username string) {
	sess.Set(middleware.SessionUserKey, username)
}

// takeRedirect pops the page remembered by RequireAuth.
func takeRedirect(sess *session.Middleware) string {
	target := afterLoginPath
	if saved, ok := sess.Get("redirect_after_login").(string); ok && saved != "" {
		target = localRedirect(saved, afterLoginPath)
	}
	sess.Delete("redirect_after_login")
	return target
}
