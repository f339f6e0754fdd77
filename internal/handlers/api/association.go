package api

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"basketlens/internal/basket"
	"basketlens/internal/metrics"
)

// AssociationHandler computes ad-hoc item pair metrics.
type AssociationHandler struct {
	data SnapshotSource
}

// NewAssociationHandler creates a new API association handler.
func NewAssociationHandler(data SnapshotSource) *AssociationHandler {
	return &AssociationHandler{data: data}
}

type associationRequest struct {
	Item1 string `json:"item1"`
	Item2 string `json:"item2"`
}

// Compute returns support, confidence and lift for the posted item pair.
func (h *AssociationHandler) Compute(c fiber.Ctx) error {
	var body associationRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	snap, err := h.data.Current()
	if err != nil {
		return jsonFromError(c, err, "failed to load dataset")
	}

	result, err := basket.ComputeAssociation(body.Item1, body.Item2, snap.Encoding)
	if err != nil {
		return jsonFromError(c, err, "failed to compute association")
	}

	metrics.RecordAssociation(string(result.Classification))
	return jsonSuccess(c, result)
}
