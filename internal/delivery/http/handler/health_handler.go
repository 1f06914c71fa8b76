package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/horecaseek-service/internal/repository/cache"
	"github.com/horecaseek-service/internal/repository/postgres"
)

// HealthHandler - liveness with dependency checks
type HealthHandler struct {
	db     *postgres.DB
	redis  *cache.Redis
	logger *zap.Logger
}

// NewHealthHandler - creates a new HealthHandler
func NewHealthHandler(db *postgres.DB, redis *cache.Redis, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		redis:  redis,
		logger: logger,
	}
}

// Health godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	status := fiber.StatusOK
	checks := fiber.Map{
		"postgres": "ok",
		"redis":    "ok",
	}

	if err := h.db.Health(c.Context()); err != nil {
		h.logger.Warn("Postgres health check failed", zap.Error(err))
		checks["postgres"] = err.Error()
		status = fiber.StatusServiceUnavailable
	}
	if err := h.redis.Health(c.Context()); err != nil {
		h.logger.Warn("Redis health check failed", zap.Error(err))
		checks["redis"] = err.Error()
		status = fiber.StatusServiceUnavailable
	}

	overall := "healthy"
	if status != fiber.StatusOK {
		overall = "degraded"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overall,
		"checks": checks,
		"time":   time.Now().UTC(),
	})
}
