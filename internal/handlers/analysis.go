package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"basketlens/internal/basket"
	"basketlens/internal/config"
	"basketlens/internal/dataset"
	"basketlens/internal/metrics"
	"basketlens/internal/validation"
)

// DefaultThreshold is the starting position of the support and confidence
// sliders.
const DefaultThreshold = 0.1

// AnalysisHandler serves the login-gated analysis pages.
type AnalysisHandler struct {
	data  SnapshotSource
	rules RuleStore
	cfg   *config.Config
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(data SnapshotSource, rules RuleStore, cfg *config.Config) *AnalysisHandler {
	return &AnalysisHandler{data: data, rules: rules, cfg: cfg}
}

// Index renders frequent itemsets and association rules filtered by the
// min_support and min_confidence query parameters.
func (h *AnalysisHandler) Index(c fiber.Ctx) error {
	data := MergeBranding(fiber.Map{
		"Title": "Analysis",
		"User":  currentUser(c),
	}, h.cfg)

	minSupport, valid, msg := validation.ParseFraction(c.Query("min_support"), DefaultThreshold)
	if !valid {
		minSupport = DefaultThreshold
		data["Error"] = "Minimum support: " + msg
	}
	minConfidence, valid, msg := validation.ParseFraction(c.Query("min_confidence"), DefaultThreshold)
	if !valid {
		minConfidence = DefaultThreshold
		data["Error"] = "Minimum confidence: " + msg
	}
	data["MinSupport"] = minSupport
	data["MinConfidence"] = minConfidence

	itemsets, err := h.rules.GetFrequentItemsets(c.Context(), minSupport)
	if err != nil {
		return err
	}
	rules, err := h.rules.GetAssociationRules(c.Context(), minSupport, minConfidence)
	if err != nil {
		return err
	}
	data["Itemsets"] = itemsets
	data["Rules"] = rules

	if _, ok := data["Error"]; ok {
		return c.Status(fiber.StatusBadRequest).Render("analysis", data)
	}
	return c.Render("analysis", data)
}

// PairForm renders the item pair checker with both selectors empty.
func (h *AnalysisHandler) PairForm(c fiber.Ctx) error {
	data, _, err := h.pairView(c)
	if err != nil {
		return err
	}
	return c.Render("pair", data)
}

// Pair computes and renders the association between two selected items.
func (h *AnalysisHandler) Pair(c fiber.Ctx) error {
	data, snap, err := h.pairView(c)
	if err != nil {
		return err
	}

	item1 := c.FormValue("item1")
	item2 := c.FormValue("item2")
	data["Item1"] = item1
	data["Item2"] = item2

	if valid, msg := validation.ValidateItemSelection(item1, item2); !valid {
		data["Error"] = msg
		return c.Status(fiber.StatusBadRequest).Render("pair", data)
	}

	result, err := basket.ComputeAssociation(item1, item2, snap.Encoding)
	if errors.Is(err, basket.ErrInvalidInput) {
		data["Error"] = err.Error()
		return c.Status(fiber.StatusBadRequest).Render("pair", data)
	}
	if err != nil {
		return err
	}

	metrics.RecordAssociation(string(result.Classification))
	data["Result"] = result
	return c.Render("pair", data)
}

func (h *AnalysisHandler) pairView(c fiber.Ctx) (fiber.Map, *dataset.Snapshot, error) {
	snap, err := h.data.Current()
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusServiceUnavailable, "The dataset has not been loaded yet.")
	}
	return MergeBranding(fiber.Map{
		"Title": "Item pair",
		"User":  currentUser(c),
		"Items": snap.Encoding.Items(),
		"Item1": "",
		"Item2": "",
	}, h.cfg), snap, nil
}
