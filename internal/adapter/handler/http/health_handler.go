package http

import (
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kikiru328/LLearn-sub001/internal/domain/repository"
)

type HealthHandler struct {
	logger         *zap.Logger
	db             *gorm.DB
	cache          repository.CacheRepository
	serviceName    string
	serviceVersion string
	startedAt      time.Time
}

func NewHealthHandler(logger *zap.Logger, db *gorm.DB, cache repository.CacheRepository, serviceName, serviceVersion string) *HealthHandler {
	return &HealthHandler{
		logger:         logger,
		db:             db,
		cache:          cache,
		serviceName:    serviceName,
		serviceVersion: serviceVersion,
		startedAt:      time.Now(),
	}
}

// Banner handles GET /.
func (h *HealthHandler) Banner(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"service": h.serviceName,
		"version": h.serviceVersion,
		"docs":    "/api/v1",
	})
}

// Liveness handles GET /health. It only reports that the process is up;
// dependency state belongs to Detailed.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": h.serviceName,
	})
}

// Detailed handles GET /health/detailed. It pings the database and Redis
// and reports 503 when either dependency is down.
func (h *HealthHandler) Detailed(c echo.Context) error {
	ctx := c.Request().Context()
	status := http.StatusOK

	dbStatus := "healthy"
	if sqlDB, err := h.db.DB(); err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		h.logger.Error("Database health check failed", zap.Error(err))
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if err := h.cache.Ping(ctx); err != nil {
		h.logger.Error("Redis health check failed", zap.Error(err))
		redisStatus = "unhealthy"
	}

	if dbStatus != "healthy" || redisStatus != "healthy" {
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, map[string]interface{}{
		"status":  statusLabel(status),
		"service": h.serviceName,
		"version": h.serviceVersion,
		"uptime":  time.Since(h.startedAt).Truncate(time.Second).String(),
		"platform": map[string]string{
			"go_version": runtime.Version(),
			"os":         runtime.GOOS,
			"arch":       runtime.GOARCH,
		},
		"dependencies": map[string]string{
			"database": dbStatus,
			"redis":    redisStatus,
		},
	})
}

func statusLabel(code int) string {
	if code == http.StatusOK {
		return "healthy"
	}
	return "degraded"
}
