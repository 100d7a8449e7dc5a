package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	cartdomain "github.com/tair/storefront/internal/cart/domain"
	"github.com/tair/storefront/internal/cart/usecase/command"
	"github.com/tair/storefront/internal/cart/usecase/query"
	catalogdomain "github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/session"
	"github.com/tair/storefront/kafka"
	"github.com/tair/storefront/pkg/logger"
)

// CartHandler handles HTTP requests for the session cart. A nil Kafka
// publisher disables activity events.
type CartHandler struct {
	addHandler    *command.AddItemHandler
	updateHandler *command.UpdateQuantityHandler
	removeHandler *command.RemoveItemHandler
	clearHandler  *command.ClearCartHandler
	getHandler    *query.GetCartHandler

	publisher *kafka.Publisher

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewCartHandler creates a cart handler with all usecase handlers wired
func NewCartHandler(carts cartdomain.CartRepository, catalog catalogdomain.CatalogRepository, publisher *kafka.Publisher) *CartHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_cart_requests_total",
			Help: "Total number of cart requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_cart_request_duration_seconds",
			Help:    "Duration of cart requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
	prometheus.MustRegister(requestCounter, requestLatency)

	return &CartHandler{
		addHandler:     command.NewAddItemHandler(carts, catalog),
		updateHandler:  command.NewUpdateQuantityHandler(carts),
		removeHandler:  command.NewRemoveItemHandler(carts),
		clearHandler:   command.NewClearCartHandler(carts),
		getHandler:     query.NewGetCartHandler(carts, catalog),
		publisher:      publisher,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

// RegisterRoutes mounts the cart endpoints
func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", h.GetCart)).Methods("GET")
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", h.ClearCart)).Methods("DELETE")
	router.HandleFunc("/api/cart/items", h.metricsMiddleware("/api/cart/items", h.AddItem)).Methods("POST")
	router.HandleFunc("/api/cart/items/{productId}", h.metricsMiddleware("/api/cart/items/{productId}", h.UpdateQuantity)).Methods("PUT")
	router.HandleFunc("/api/cart/items/{productId}", h.metricsMiddleware("/api/cart/items/{productId}", h.RemoveItem)).Methods("DELETE")
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	summary, err := h.getHandler.Handle(r.Context(), query.GetCartQuery{
		SessionID: session.FromContext(r.Context()),
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to get cart")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get cart",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    summary,
	})
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	sessionID := session.FromContext(r.Context())
	cart, err := h.addHandler.Handle(r.Context(), command.AddItemCommand{
		SessionID: sessionID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if errors.Is(err, catalogdomain.ErrProductNotFound) {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to add cart item")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to add cart item",
		})
		return
	}

	h.publishAdded(r, sessionID, req.ProductID, req.Quantity, cart)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item added to cart",
		Data:    cart,
	})
}

func (h *CartHandler) publishAdded(r *http.Request, sessionID, productID string, quantity int, cart cartdomain.Cart) {
	if h.publisher == nil {
		return
	}
	item, ok := cart.Item(productID)
	if !ok {
		return
	}
	event := kafka.CartItemAddedEvent{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: item.Product.Price.Amount,
		Currency:  string(item.Product.Price.Currency),
	}
	if err := h.publisher.PublishCartItemAdded(r.Context(), event); err != nil {
		logger.Warn(r.Context()).Err(err).Str("product_id", productID).Msg("Failed to publish cart event")
	}
}

// UpdateQuantity handles PUT /api/cart/items/{productId}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cart, err := h.updateHandler.Handle(r.Context(), command.UpdateQuantityCommand{
		SessionID: session.FromContext(r.Context()),
		ProductID: mux.Vars(r)["productId"],
		Quantity:  req.Quantity,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to update cart item")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to update cart item",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    cart,
	})
}

// RemoveItem handles DELETE /api/cart/items/{productId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.removeHandler.Handle(r.Context(), command.RemoveItemCommand{
		SessionID: session.FromContext(r.Context()),
		ProductID: mux.Vars(r)["productId"],
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to remove cart item")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to remove cart item",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    cart,
	})
}

// ClearCart handles DELETE /api/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	err := h.clearHandler.Handle(r.Context(), command.ClearCartCommand{
		SessionID: session.FromContext(r.Context()),
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to clear cart")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to clear cart",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Cart cleared",
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

func (h *CartHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}
