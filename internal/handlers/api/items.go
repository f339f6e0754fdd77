package api

import (
	"github.com/gofiber/fiber/v3"
)

// ItemHandler lists the selectable item universe.
type ItemHandler struct {
	data SnapshotSource
}

// NewItemHandler creates a new API item handler.
func NewItemHandler(data SnapshotSource) *ItemHandler {
	return &ItemHandler{data: data}
}

// List returns the sorted item universe and the basket count.
func (h *ItemHandler) List(c fiber.Ctx) error {
	snap, err := h.data.Current()
	if err != nil {
		return jsonFromError(c, err, "failed to load dataset")
	}

	return jsonSuccess(c, fiber.Map{
		"items":   snap.Encoding.Items(),
		"baskets": snap.Encoding.NumBaskets(),
	})
}
