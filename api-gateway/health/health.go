package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tair/storefront/api-gateway/config"
	"github.com/tair/storefront/pkg/logger"
)

// ServiceHealth represents the health status of the storefront backend
type ServiceHealth struct {
	Name      string        `json:"name"`
	Status    string        `json:"status"` // healthy, unhealthy
	URL       string        `json:"url"`
	Latency   time.Duration `json:"latency_ms"`
	Error     string        `json:"error,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// GatewayHealth represents the overall gateway health
type GatewayHealth struct {
	Gateway    string        `json:"gateway"`
	Status     string        `json:"status"`
	Storefront ServiceHealth `json:"storefront"`
	Uptime     time.Duration `json:"uptime_seconds"`
}

// HealthChecker checks health of the storefront backend
type HealthChecker struct {
	config    *config.GatewayConfig
	client    *http.Client
	startTime time.Time
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(cfg *config.GatewayConfig) *HealthChecker {
	return &HealthChecker{
		config: cfg,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		startTime: time.Now(),
	}
}

// CheckStorefront checks health of the storefront service
func (h *HealthChecker) CheckStorefront(ctx context.Context) ServiceHealth {
	start := time.Now()
	svc := h.config.Storefront
	healthURL := svc.BaseURL + svc.HealthCheck

	result := ServiceHealth{
		Name:      svc.Name,
		URL:       svc.BaseURL,
		Timestamp: time.Now(),
	}

	req, err := http.NewRequestWithContext(ctx, "GET", healthURL, nil)
	if err != nil {
		result.Status = "unhealthy"
		result.Error = fmt.Sprintf("Failed to create request: %v", err)
		result.Latency = time.Since(start)
		return result
	}

	resp, err := h.client.Do(req)
	if err != nil {
		result.Status = "unhealthy"
		result.Error = fmt.Sprintf("Failed to reach service: %v", err)
		result.Latency = time.Since(start)
		return result
	}
	defer resp.Body.Close()

	result.Latency = time.Since(start)

	if resp.StatusCode == http.StatusOK {
		result.Status = "healthy"
	} else {
		result.Status = "unhealthy"
		result.Error = fmt.Sprintf("Unexpected status code: %d", resp.StatusCode)
	}

	if result.Status != "healthy" {
		logger.Logger.Warn().
			Str("service", result.Name).
			Str("error", result.Error).
			Msg("Storefront health check failed")
	}

	return result
}

// Check checks the storefront and derives the gateway status from it
func (h *HealthChecker) Check(ctx context.Context) GatewayHealth {
	storefront := h.CheckStorefront(ctx)

	status := "healthy"
	if storefront.Status != "healthy" {
		status = "unhealthy"
	}

	return GatewayHealth{
		Gateway:    "api-gateway",
		Status:     status,
		Storefront: storefront,
		Uptime:     time.Since(h.startTime),
	}
}

// QuickCheck performs a quick health check (just gateway itself)
func (h *HealthChecker) QuickCheck() map[string]interface{} {
	return map[string]interface{}{
		"status":    "healthy",
		"gateway":   "api-gateway",
		"uptime":    time.Since(h.startTime).Seconds(),
		"timestamp": time.Now(),
	}
}
