package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	catalogdomain "github.com/tair/storefront/internal/catalog/domain"
	favdomain "github.com/tair/storefront/internal/favorites/domain"
	"github.com/tair/storefront/internal/favorites/usecase/command"
	"github.com/tair/storefront/internal/favorites/usecase/query"
	"github.com/tair/storefront/internal/session"
	"github.com/tair/storefront/kafka"
	"github.com/tair/storefront/pkg/logger"
)

// FavoritesHandler handles HTTP requests for the session favorites. A nil
// Kafka publisher disables activity events.
type FavoritesHandler struct {
	addHandler    *command.AddFavoriteHandler
	removeHandler *command.RemoveFavoriteHandler
	toggleHandler *command.ToggleFavoriteHandler
	clearHandler  *command.ClearFavoritesHandler
	listHandler   *query.ListFavoritesHandler
	checkHandler  *query.IsFavoriteHandler

	publisher *kafka.Publisher

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewFavoritesHandler creates a favorites handler with all usecase
// handlers wired
func NewFavoritesHandler(favorites favdomain.FavoritesRepository, catalog catalogdomain.CatalogRepository, publisher *kafka.Publisher) *FavoritesHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_favorites_requests_total",
			Help: "Total number of favorites requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_favorites_request_duration_seconds",
			Help:    "Duration of favorites requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
	prometheus.MustRegister(requestCounter, requestLatency)

	return &FavoritesHandler{
		addHandler:     command.NewAddFavoriteHandler(favorites, catalog),
		removeHandler:  command.NewRemoveFavoriteHandler(favorites),
		toggleHandler:  command.NewToggleFavoriteHandler(favorites, catalog),
		clearHandler:   command.NewClearFavoritesHandler(favorites),
		listHandler:    query.NewListFavoritesHandler(favorites),
		checkHandler:   query.NewIsFavoriteHandler(favorites),
		publisher:      publisher,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

// RegisterRoutes mounts the favorites endpoints
func (h *FavoritesHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/favorites", h.metricsMiddleware("/api/favorites", h.ListFavorites)).Methods("GET")
	router.HandleFunc("/api/favorites", h.metricsMiddleware("/api/favorites", h.ClearFavorites)).Methods("DELETE")
	router.HandleFunc("/api/favorites/{productId}", h.metricsMiddleware("/api/favorites/{productId}", h.AddFavorite)).Methods("PUT")
	router.HandleFunc("/api/favorites/{productId}", h.metricsMiddleware("/api/favorites/{productId}", h.RemoveFavorite)).Methods("DELETE")
	router.HandleFunc("/api/favorites/{productId}", h.metricsMiddleware("/api/favorites/{productId}", h.CheckFavorite)).Methods("GET")
	router.HandleFunc("/api/favorites/{productId}/toggle", h.metricsMiddleware("/api/favorites/{productId}/toggle", h.ToggleFavorite)).Methods("POST")
}

// ListFavorites handles GET /api/favorites
func (h *FavoritesHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	view, err := h.listHandler.Handle(r.Context(), query.ListFavoritesQuery{
		SessionID: session.FromContext(r.Context()),
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list favorites")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list favorites",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    view,
	})
}

// AddFavorite handles PUT /api/favorites/{productId}
func (h *FavoritesHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	err := h.addHandler.Handle(r.Context(), command.AddFavoriteCommand{
		SessionID: session.FromContext(r.Context()),
		ProductID: mux.Vars(r)["productId"],
	})
	if errors.Is(err, catalogdomain.ErrProductNotFound) {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to add favorite")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to add favorite",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product favorited",
	})
}

// RemoveFavorite handles DELETE /api/favorites/{productId}
func (h *FavoritesHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	err := h.removeHandler.Handle(r.Context(), command.RemoveFavoriteCommand{
		SessionID: session.FromContext(r.Context()),
		ProductID: mux.Vars(r)["productId"],
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to remove favorite")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to remove favorite",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product unfavorited",
	})
}

// ToggleFavorite handles POST /api/favorites/{productId}/toggle
func (h *FavoritesHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	sessionID := session.FromContext(r.Context())
	productID := mux.Vars(r)["productId"]

	favorited, err := h.toggleHandler.Handle(r.Context(), command.ToggleFavoriteCommand{
		SessionID: sessionID,
		ProductID: productID,
	})
	if errors.Is(err, catalogdomain.ErrProductNotFound) {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to toggle favorite")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to toggle favorite",
		})
		return
	}

	if h.publisher != nil {
		event := kafka.FavoriteToggledEvent{
			SessionID: sessionID,
			ProductID: productID,
			Favorited: favorited,
		}
		if err := h.publisher.PublishFavoriteToggled(r.Context(), event); err != nil {
			logger.Warn(r.Context()).Err(err).Str("product_id", productID).Msg("Failed to publish favorite event")
		}
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]bool{"favorited": favorited},
	})
}

// CheckFavorite handles GET /api/favorites/{productId}
func (h *FavoritesHandler) CheckFavorite(w http.ResponseWriter, r *http.Request) {
	favorited, err := h.checkHandler.Handle(r.Context(), query.IsFavoriteQuery{
		SessionID: session.FromContext(r.Context()),
		ProductID: mux.Vars(r)["productId"],
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to check favorite")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to check favorite",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]bool{"favorited": favorited},
	})
}

// ClearFavorites handles DELETE /api/favorites
func (h *FavoritesHandler) ClearFavorites(w http.ResponseWriter, r *http.Request) {
	err := h.clearHandler.Handle(r.Context(), command.ClearFavoritesCommand{
		SessionID: session.FromContext(r.Context()),
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to clear favorites")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to clear favorites",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Favorites cleared",
	})
}

// Response is the storefront JSON envelope
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode response")
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (h *FavoritesHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}
