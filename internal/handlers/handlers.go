package handlers

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v3"

	"basketlens/internal/dataset"
	"basketlens/internal/models"
)

// SnapshotSource yields the currently loaded dataset.
type SnapshotSource interface {
	Current() (*dataset.Snapshot, error)
}

// RuleStore reads precomputed itemsets and rules.
type RuleStore interface {
	GetFrequentItemsets(ctx context.Context, minSupport float64) ([]models.FrequentItemset, error)
	GetAssociationRules(ctx context.Context, minSupport, minConfidence float64) ([]models.AssociationRule, error)
}

// currentUser returns the user set by the auth middleware, if any.
func currentUser(c fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}

// localRedirect accepts only same-site paths.
func localRedirect(target, fallback string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return fallback
	}
	return target
}
