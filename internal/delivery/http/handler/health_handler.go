package handler

import (
	"context"
	"time"

	"mentor-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports the store as required and the cache as optional:
// a cache outage degrades the service but does not fail the check.
type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Check)
}

func (h *HealthHandler) Check(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := fiber.StatusOK
	out := fiber.Map{"database": "ok", "cache": "ok"}

	if h.db == nil || h.db.Ping(ctx) != nil {
		status = fiber.StatusServiceUnavailable
		out["database"] = "unavailable"
	}
	if h.cache == nil || h.cache.Ping(ctx) != nil {
		out["cache"] = "degraded"
	}

	return response.Success(c, status, "", out)
}
