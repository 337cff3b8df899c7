// Package health contiene el DTO del health check.
package health

import "time"

// HealthResponse representa la respuesta de GET /healthz.
type HealthResponse struct {
	Status    string    `json:"status"` // "ready" | "unavailable"
	Driver    string    `json:"driver"`
	Timestamp time.Time `json:"timestamp"`
}
