package api

import (
	"github.com/gofiber/fiber/v3"

	"basketlens/internal/models"
	"basketlens/internal/validation"
)

// DefaultThreshold is the starting min support / min confidence.
const DefaultThreshold = 0.1

// RuleHandler serves precomputed itemsets and association rules.
type RuleHandler struct {
	rules RuleStore
}

// NewRuleHandler creates a new API rule handler.
func NewRuleHandler(rules RuleStore) *RuleHandler {
	return &RuleHandler{rules: rules}
}

// Itemsets returns itemsets with support >= min_support.
func (h *RuleHandler) Itemsets(c fiber.Ctx) error {
	minSupport, valid, msg := validation.ParseFraction(c.Query("min_support"), DefaultThreshold)
	if !valid {
		return jsonError(c, fiber.StatusBadRequest, "min_support: "+msg)
	}

	sets, err := h.rules.GetFrequentItemsets(c.Context(), minSupport)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch itemsets")
	}
	if sets == nil {
		sets = []models.FrequentItemset{}
	}

	return jsonSuccess(c, sets)
}

// Rules returns rules passing both min_support and min_confidence.
func (h *RuleHandler) Rules(c fiber.Ctx) error {
	minSupport, valid, msg := validation.ParseFraction(c.Query("min_support"), DefaultThreshold)
	if !valid {
		return jsonError(c, fiber.StatusBadRequest, "min_support: "+msg)
	}
	minConfidence, valid, msg := validation.ParseFraction(c.Query("min_confidence"), DefaultThreshold)
	if !valid {
		return jsonError(c, fiber.StatusBadRequest, "min_confidence: "+msg)
	}

	rules, err := h.rules.GetAssociationRules(c.Context(), minSupport, minConfidence)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch rules")
	}
	if rules == nil {
		rules = []models.AssociationRule{}
	}

	return jsonSuccess(c, rules)
}
