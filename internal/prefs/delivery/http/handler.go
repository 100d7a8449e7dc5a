package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/storefront/internal/prefs/domain"
	"github.com/tair/storefront/internal/prefs/usecase/command"
	"github.com/tair/storefront/internal/prefs/usecase/query"
	"github.com/tair/storefront/internal/session"
	"github.com/tair/storefront/pkg/logger"
)

// PrefsHandler handles HTTP requests for the session UI preferences
type PrefsHandler struct {
	setHandler *command.SetThemeHandler
	getHandler *query.GetPreferencesHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewPrefsHandler creates a preferences handler with all usecase handlers
// wired
func NewPrefsHandler(prefs domain.PreferencesRepository, source domain.SchemeSource) *PrefsHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_prefs_requests_total",
			Help: "Total number of preferences requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_prefs_request_duration_seconds",
			Help:    "Duration of preferences requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
	prometheus.MustRegister(requestCounter, requestLatency)

	return &PrefsHandler{
		setHandler:     command.NewSetThemeHandler(prefs, source),
		getHandler:     query.NewGetPreferencesHandler(prefs),
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

// RegisterRoutes mounts the preferences endpoints
func (h *PrefsHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/preferences", h.metricsMiddleware("/api/preferences", h.GetPreferences)).Methods("GET")
	router.HandleFunc("/api/preferences/theme", h.metricsMiddleware("/api/preferences/theme", h.SetTheme)).Methods("PUT")
}

// GetPreferences handles GET /api/preferences
func (h *PrefsHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.getHandler.Handle(r.Context(), query.GetPreferencesQuery{
		SessionID: session.FromContext(r.Context()),
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to get preferences")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get preferences",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    prefs,
	})
}

// SetTheme handles PUT /api/preferences/theme
func (h *PrefsHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Theme string `json:"theme"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	prefs, err := h.setHandler.Handle(r.Context(), command.SetThemeCommand{
		SessionID: session.FromContext(r.Context()),
		Theme:     req.Theme,
	})
	if errors.Is(err, domain.ErrUnknownTheme) {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Unknown theme: " + req.Theme,
		})
		return
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to set theme")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to set theme",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    prefs,
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

func (h *PrefsHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}
