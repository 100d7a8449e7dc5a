package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tair/storefront/api-gateway/config"
	"github.com/tair/storefront/api-gateway/health"
	"github.com/tair/storefront/api-gateway/proxy"
)

// RouteDefinition defines a proxied route mapping
type RouteDefinition struct {
	Prefix      string
	Description string
}

// Routes holds all storefront route prefixes
var Routes = []RouteDefinition{
	{Prefix: "/api/products", Description: "Catalog browsing, search, filters, facets"},
	{Prefix: "/api/categories", Description: "Category taxonomy"},
	{Prefix: "/api/brands", Description: "Brand taxonomy"},
	{Prefix: "/api/catalog", Description: "Catalog maintenance (facet refresh)"},
	{Prefix: "/api/cart", Description: "Session shopping cart"},
	{Prefix: "/api/favorites", Description: "Session favorites"},
	{Prefix: "/api/preferences", Description: "Session UI preferences"},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig) {
	reverseProxy := proxy.NewReverseProxy(cfg)
	healthChecker := health.NewHealthChecker(cfg)

	// Gateway quick health check (no downstream checks)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(healthChecker.QuickCheck())
	})

	// Liveness probe (for Kubernetes)
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "alive",
		})
	})

	// Readiness probe (checks the storefront)
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		healthStatus := healthChecker.Check(ctx)

		statusCode := fiber.StatusOK
		if healthStatus.Status == "unhealthy" {
			statusCode = fiber.StatusServiceUnavailable
		}

		return c.Status(statusCode).JSON(healthStatus)
	})

	// API routes overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Storefront API Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	// Register all storefront routes
	handler := func(c *fiber.Ctx) error {
		return reverseProxy.ProxyRequest(c)
	}
	for _, route := range Routes {
		app.Group(route.Prefix).All("/*", handler)
		app.All(route.Prefix, handler)
	}
}
