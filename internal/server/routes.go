package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"basketlens/internal/dataset"
	"basketlens/internal/db"
	"basketlens/internal/faq"
	"basketlens/internal/handlers"
	"basketlens/internal/handlers/api"
	"basketlens/internal/middleware"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, database *db.DB, data *dataset.Store, matcher *faq.Matcher) error {
	authMiddleware := middleware.NewAuthMiddleware(database)

	// Probes and metrics
	probeHandler := handlers.NewProbeHandler(database, data)
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Password login is always available; OIDC is an optional second method.
	authHandler := handlers.NewAuthHandler(database, s.Cfg)
	s.App.Get("/login", authHandler.LoginPage)
	s.App.Post("/login", authHandler.Login)
	s.App.Get("/logout", authHandler.Logout)

	if s.Cfg.OIDCEnabled() {
		oidcHandler, err := handlers.NewOIDCHandler(ctx, s.Cfg, database)
		if err != nil {
			log.Printf("Warning: Failed to initialize OIDC auth: %v", err)
			log.Println("OIDC authentication is disabled. Password login remains available.")
		} else {
			s.App.Get("/auth/login", oidcHandler.Login)
			s.App.Get("/auth/callback", oidcHandler.Callback)
		}
	}

	// Public pages
	dashboardHandler := handlers.NewDashboardHandler(data, s.Cfg)
	chatHandler := handlers.NewChatHandler(matcher, s.Cfg)
	s.App.Get("/", authMiddleware.OptionalAuth, dashboardHandler.Index)
	s.App.Get("/chat", authMiddleware.OptionalAuth, chatHandler.Page)
	s.App.Post("/chat", authMiddleware.OptionalAuth, chatHandler.Ask)

	// Analysis pages - login required
	analysisHandler := handlers.NewAnalysisHandler(data, database, s.Cfg)
	s.App.Get("/analysis", authMiddleware.RequireAuth, analysisHandler.Index)
	s.App.Get("/analysis/pair", authMiddleware.RequireAuth, analysisHandler.PairForm)
	s.App.Post("/analysis/pair", authMiddleware.RequireAuth, analysisHandler.Pair)

	// JSON API
	apiGroup := s.App.Group("/api")
	apiGroup.Get("/items", api.NewItemHandler(data).List)
	apiGroup.Post("/chat", api.NewChatHandler(matcher).Ask)

	ruleHandler := api.NewRuleHandler(database)
	apiGroup.Post("/association", authMiddleware.RequireAPIAuth, api.NewAssociationHandler(data).Compute)
	apiGroup.Get("/itemsets", authMiddleware.RequireAPIAuth, ruleHandler.Itemsets)
	apiGroup.Get("/rules", authMiddleware.RequireAPIAuth, ruleHandler.Rules)

	return nil
}
