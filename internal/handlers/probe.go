package handlers

import (
	"context"

	"github.com/gofiber/fiber/v3"
)

// Pinger reports database reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	db   Pinger
	data SnapshotSource
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(database Pinger, data SnapshotSource) *ProbeHandler {
	return &ProbeHandler{db: database, data: data}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Ready means the database answers and a dataset snapshot is loaded.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if err := h.db.Ping(c.Context()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "database unavailable",
		})
	}

	if _, err := h.data.Current(); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "dataset not loaded",
		})
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
