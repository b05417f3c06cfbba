package handler

import (
	"context"

	"github.com/gofiber/fiber/v3"
)

// Pinger reports whether the persistence backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db      Pinger
	appName string
	version string
}

func NewHealthHandler(db Pinger, appName, version string) *HealthHandler {
	return &HealthHandler{db: db, appName: appName, version: version}
}

func (h *HealthHandler) HandleRoot(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service": h.appName,
		"version": h.version,
		"status":  "running",
	})
}

// HandleHealth reports liveness plus database connectivity. A broken
// database does not change the HTTP status: load balancers only need to
// know the process is up.
func (h *HealthHandler) HandleHealth(c fiber.Ctx) error {
	database := "connected"
	status := "healthy"
	if err := h.db.Ping(c.Context()); err != nil {
		database = "disconnected"
		status = "degraded"
	}
	return c.JSON(fiber.Map{
		"status":   status,
		"database": database,
	})
}
