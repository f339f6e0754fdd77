package handlers

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log/slog"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"golang.org/x/oauth2"

	"basketlens/internal/config"
	"basketlens/internal/models"
)

// OIDCUserStore creates users signing in through the identity provider.
type OIDCUserStore interface {
	UpsertOIDCUser(ctx context.Context, sub, username string) (*models.User, error)
}

// OIDCHandler handles OIDC authentication flows.
type OIDCHandler struct {
	provider     *oidc.Provider
	oauth2Config oauth2.Config
	verifier     *oidc.IDTokenVerifier
	users        OIDCUserStore
	cfg          *config.Config
}

// NewOIDCHandler creates a new auth handler with OIDC configuration.
func NewOIDCHandler(ctx context.Context, cfg *config.Config, users OIDCUserStore) (*OIDCHandler, error) {
	provider, err := oidc.NewProvider(ctx, cfg.OIDCIssuer)
	if err != nil {
		return nil, err
	}

	oauth2Config := oauth2.Config{
		ClientID:     cfg.OIDCClientID,
		ClientSecret: cfg.OIDCClientSecret,
		RedirectURL:  cfg.OIDCRedirectURL,
		Endpoint:     provider.Endpoint(),
		Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
	}

	return &OIDCHandler{
		provider:     provider,
		oauth2Config: oauth2Config,
		verifier:     provider.Verifier(&oidc.Config{ClientID: cfg.OIDCClientID}),
		users:        users,
		cfg:          cfg,
	}, nil
}

// Login initiates the OIDC login flow.
func (h *OIDCHandler) Login(c fiber.Ctx) error {
	state := generateState()

	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}
	sess.Set("oauth_state", state)

	return c.Redirect().To(h.oauth2Config.AuthCodeURL(state))
}

// Callback handles the OIDC callback after authentication.
func (h *OIDCHandler) Callback(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}

	// Verify state
	savedState, _ := sess.Get("oauth_state").(string)
	if savedState == "" || savedState != c.Query("state") {
		return fiber.NewError(fiber.StatusBadRequest, "invalid state")
	}
	sess.Delete("oauth_state")

	oauth2Token, err := h.oauth2Config.Exchange(c.Context(), c.Query("code"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "failed to exchange code")
	}

	rawIDToken, ok := oauth2Token.Extra("id_token").(string)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "missing id_token")
	}

	idToken, err := h.verifier.Verify(c.Context(), rawIDToken)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id_token")
	}

	var claims struct {
		Sub               string `json:"sub"`
		PreferredUsername string `json:"preferred_username"`
		Email             string `json:"email"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return err
	}

	// Some providers only put the subject in the ID token.
	if claims.PreferredUsername == "" && claims.Email == "" {
		userInfo, err := h.provider.UserInfo(c.Context(), oauth2.StaticTokenSource(oauth2Token))
		if err != nil {
			slog.Warn("failed to fetch userinfo", "error", err)
		} else {
			claims.Email = userInfo.Email
		}
	}

	user, err := h.users.UpsertOIDCUser(c.Context(), claims.Sub, oidcUsername(claims.Sub, claims.PreferredUsername, claims.Email))
	if err != nil {
		return err
	}

	startSession(sess, user.Username)
	return c.Redirect().To(takeRedirect(sess))
}

// oidcUsername picks the display name for a first-time OIDC user.
func oidcUsername(sub, preferred, email string) string {
	switch {
	case preferred != "":
		return preferred
	case email != "":
		return email
	default:
		return sub
	}
}

func generateState() string {
	b := make([]byte, 16)
	rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}
