package handlers

import (
	"github.com/gofiber/fiber/v3"

	"basketlens/internal/config"
)

// DashboardHandler renders the dataset overview.
type DashboardHandler struct {
	data SnapshotSource
	cfg  *config.Config
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(data SnapshotSource, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{data: data, cfg: cfg}
}

// Index renders the home page: preview, shape, numeric summary and the top
// item frequency chart.
func (h *DashboardHandler) Index(c fiber.Ctx) error {
	data := MergeBranding(fiber.Map{
		"Title": "Dataset",
		"User":  currentUser(c),
	}, h.cfg)

	snap, err := h.data.Current()
	if err != nil {
		data["DatasetError"] = "The dataset has not been loaded yet."
		return c.Status(fiber.StatusServiceUnavailable).Render("index", data)
	}

	data["Summary"] = snap.Summary
	data["LoadedAt"] = snap.LoadedAt
	data["Baskets"] = snap.Encoding.NumBaskets()
	data["ItemCount"] = len(snap.Encoding.Items())

	return c.Render("index", data)
}
