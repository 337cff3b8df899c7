// Package health contiene el controller del health check.
package health

import (
	"context"
	"net/http"
	"time"

	dto "github.com/dropDatabas3/webshop/internal/http/dto/health"
	"github.com/dropDatabas3/webshop/internal/http/helpers"
	"github.com/dropDatabas3/webshop/internal/observability/logger"
)

// PingFunc chequea la disponibilidad del backend de storage.
// nil significa que no hay nada que chequear (driver memory).
type PingFunc func(ctx context.Context) error

// Controller maneja GET /healthz.
type Controller struct {
	driver string
	ping   PingFunc
}

// NewController crea un controller de health check.
func NewController(driver string, ping PingFunc) *Controller {
	return &Controller{driver: driver, ping: ping}
}

// Healthz responde el estado del servicio y su storage.
func (c *Controller) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("HealthController.Healthz"))

	resp := dto.HealthResponse{
		Status:    "ready",
		Driver:    c.driver,
		Timestamp: time.Now().UTC(),
	}
	status := http.StatusOK

	if c.ping != nil {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := c.ping(pingCtx); err != nil {
			log.Warn("storage ping failed", logger.Err(err))
			resp.Status = "unavailable"
			status = http.StatusServiceUnavailable
		}
	}

	helpers.WriteJSON(w, status, resp)
}
