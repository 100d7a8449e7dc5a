package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	cartHTTP "github.com/tair/storefront/internal/cart/delivery/http"
	cartdomain "github.com/tair/storefront/internal/cart/domain"
	cartrepo "github.com/tair/storefront/internal/cart/repository"
	catalogHTTP "github.com/tair/storefront/internal/catalog/delivery/http"
	catalogdomain "github.com/tair/storefront/internal/catalog/domain"
	catalogrepo "github.com/tair/storefront/internal/catalog/repository"
	favoritesHTTP "github.com/tair/storefront/internal/favorites/delivery/http"
	favdomain "github.com/tair/storefront/internal/favorites/domain"
	favrepo "github.com/tair/storefront/internal/favorites/repository"
	prefsHTTP "github.com/tair/storefront/internal/prefs/delivery/http"
	prefsdomain "github.com/tair/storefront/internal/prefs/domain"
	prefsrepo "github.com/tair/storefront/internal/prefs/repository"
	"github.com/tair/storefront/internal/session"
	"github.com/tair/storefront/kafka"
	"github.com/tair/storefront/pkg/database"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/tracing"
)

func main() {
	logger.Init("storefront", getEnv("APP_ENV", "development") == "development")
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	// Initialize tracing
	tp, err := tracing.InitTracer("storefront")
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Tracing disabled")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	catalog := buildCatalogRepository()
	carts, favorites, prefs := buildSessionStores()
	publisher := buildPublisher()
	if publisher != nil {
		defer publisher.Close()
	}

	// Setup router
	router := mux.NewRouter()

	catalogHandler := catalogHTTP.NewCatalogHandler(catalog, publisher)
	catalogHandler.RegisterRoutes(router)
	if count, err := catalog.Count(context.Background()); err == nil {
		catalogHandler.UpdateCatalogSizeMetric(count)
	}

	cartHTTP.NewCartHandler(carts, catalog, publisher).RegisterRoutes(router)
	favoritesHTTP.NewFavoritesHandler(favorites, catalog, publisher).RegisterRoutes(router)
	prefsHTTP.NewPrefsHandler(prefs, prefsrepo.EnvSchemeSource{}).RegisterRoutes(router)

	router.Handle("/metrics", promhttp.Handler())
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy","service":"storefront"}`))
	}).Methods("GET")

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := otelhttp.NewHandler(c.Handler(session.Middleware(router)), "storefront")

	port := getEnv("HTTP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Logger.Info().Str("port", port).Msg("Storefront HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Forced shutdown")
	}
}

// buildCatalogRepository selects the catalog backend. The default is the
// embedded static catalog; CATALOG_BACKEND=postgres persists it through
// gorm and reads it back from there.
func buildCatalogRepository() catalogdomain.CatalogRepository {
	if getEnv("CATALOG_BACKEND", "memory") != "postgres" {
		return catalogrepo.NewCatalogRepositoryWithTracing(catalogrepo.NewSeededCatalogRepository())
	}

	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "storefrontdb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	repo := catalogrepo.NewGormCatalogRepository(db)
	if err := repo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}
	if err := repo.Seed(catalogrepo.SeedData()); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to seed catalog")
	}
	return catalogrepo.NewCatalogRepositoryWithTracing(repo)
}

// buildSessionStores connects the cart, favorites and preferences stores
// to Redis, falling back to in-memory snapshots when Redis is unreachable.
func buildSessionStores() (cartdomain.CartRepository, favdomain.FavoritesRepository, prefsdomain.PreferencesRepository) {
	client := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Logger.Warn().Err(err).Msg("Redis unavailable, session stores will not survive restarts")
		return cartrepo.NewMemoryCartRepository(), favrepo.NewMemoryFavoritesRepository(), prefsrepo.NewMemoryPreferencesRepository()
	}

	logger.Logger.Info().Str("addr", client.Options().Addr).Msg("Session stores backed by Redis")
	return cartrepo.NewRedisCartRepository(client), favrepo.NewRedisFavoritesRepository(client), prefsrepo.NewRedisPreferencesRepository(client)
}

// buildPublisher connects the Kafka activity publisher; unset brokers
// disable events entirely.
func buildPublisher() *kafka.Publisher {
	brokers := getEnv("KAFKA_BROKERS", "")
	if brokers == "" {
		logger.Logger.Info().Msg("Kafka brokers not configured, activity events disabled")
		return nil
	}

	publisher, err := kafka.NewPublisher(strings.Split(brokers, ","))
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Kafka unavailable, activity events disabled")
		return nil
	}
	return publisher
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
