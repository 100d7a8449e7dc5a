package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/catalog/usecase/query"
	"github.com/tair/storefront/internal/session"
	"github.com/tair/storefront/kafka"
	"github.com/tair/storefront/pkg/logger"
)

// CatalogHandler handles HTTP requests for catalog browsing. A nil Kafka
// publisher disables activity events.
type CatalogHandler struct {
	browseHandler     *query.BrowseProductsHandler
	getProductHandler *query.GetProductHandler
	relatedHandler    *query.RelatedProductsHandler
	categoriesHandler *query.ListCategoriesHandler
	brandsHandler     *query.ListBrandsHandler
	facetsHandler     *query.GetFacetsHandler

	publisher *kafka.Publisher

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	catalogSize    prometheus.Gauge
}

// NewCatalogHandler creates a catalog handler with all query handlers wired
// (manual DI, mirrored by the wire injector)
func NewCatalogHandler(repo domain.CatalogRepository, publisher *kafka.Publisher) *CatalogHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_catalog_requests_total",
			Help: "Total number of catalog requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_catalog_request_duration_seconds",
			Help:    "Duration of catalog requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
	catalogSize := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_catalog_products",
			Help: "Number of products in the catalog",
		},
	)
	prometheus.MustRegister(requestCounter, requestLatency, catalogSize)

	return &CatalogHandler{
		browseHandler:     query.NewBrowseProductsHandler(repo),
		getProductHandler: query.NewGetProductHandler(repo),
		relatedHandler:    query.NewRelatedProductsHandler(repo),
		categoriesHandler: query.NewListCategoriesHandler(repo),
		brandsHandler:     query.NewListBrandsHandler(repo),
		facetsHandler:     query.NewGetFacetsHandler(repo),
		publisher:         publisher,
		requestCounter:    requestCounter,
		requestLatency:    requestLatency,
		catalogSize:       catalogSize,
	}
}

// RegisterRoutes mounts the catalog endpoints
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.BrowseProducts)).Methods("GET")
	router.HandleFunc("/api/products/facets", h.metricsMiddleware("/api/products/facets", h.GetFacets)).Methods("GET")
	router.HandleFunc("/api/products/slug/{slug}", h.metricsMiddleware("/api/products/slug/{slug}", h.GetProductBySlug)).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/products/{id}/related", h.metricsMiddleware("/api/products/{id}/related", h.GetRelatedProducts)).Methods("GET")
	router.HandleFunc("/api/categories", h.metricsMiddleware("/api/categories", h.ListCategories)).Methods("GET")
	router.HandleFunc("/api/brands", h.metricsMiddleware("/api/brands", h.ListBrands)).Methods("GET")
	router.HandleFunc("/api/catalog/refresh", h.metricsMiddleware("/api/catalog/refresh", h.RefreshCatalog)).Methods("POST")
}

// BrowseProducts handles GET /api/products
func (h *CatalogHandler) BrowseProducts(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	page, _ := strconv.Atoi(params.Get("page"))
	pageSize, _ := strconv.Atoi(params.Get("pageSize"))

	q := query.BrowseProductsQuery{
		Search:   params.Get("q"),
		Sort:     domain.ParseSortOption(params.Get("sort")),
		Page:     page,
		PageSize: pageSize,
		Filters:  parseFilters(params),
	}

	products, meta, err := h.browseHandler.Handle(r.Context(), q)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to browse products")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to browse products",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"products":   products,
			"pagination": meta,
		},
	})
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	h.getOne(w, r, query.GetProductQuery{ID: mux.Vars(r)["id"]})
}

// GetProductBySlug handles GET /api/products/slug/{slug}
func (h *CatalogHandler) GetProductBySlug(w http.ResponseWriter, r *http.Request) {
	h.getOne(w, r, query.GetProductQuery{Slug: mux.Vars(r)["slug"]})
}

func (h *CatalogHandler) getOne(w http.ResponseWriter, r *http.Request, q query.GetProductQuery) {
	product, err := h.getProductHandler.Handle(r.Context(), q)
	if errors.Is(err, domain.ErrProductNotFound) {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to get product")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get product",
		})
		return
	}

	h.publishViewed(r, product)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    product,
	})
}

func (h *CatalogHandler) publishViewed(r *http.Request, product *domain.Product) {
	if h.publisher == nil {
		return
	}
	event := kafka.ProductViewedEvent{
		SessionID: session.FromContext(r.Context()),
		ProductID: product.ID,
		Slug:      product.Slug,
	}
	if err := h.publisher.PublishProductViewed(r.Context(), event); err != nil {
		logger.Warn(r.Context()).Err(err).Str("product_id", product.ID).Msg("Failed to publish product viewed event")
	}
}

// GetRelatedProducts handles GET /api/products/{id}/related
func (h *CatalogHandler) GetRelatedProducts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	related, err := h.relatedHandler.Handle(r.Context(), query.RelatedProductsQuery{
		ProductID: mux.Vars(r)["id"],
		Limit:     limit,
	})
	if errors.Is(err, domain.ErrProductNotFound) {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to get related products")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get related products",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    related,
	})
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoriesHandler.Handle(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list categories")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list categories",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    categories,
	})
}

// ListBrands handles GET /api/brands
func (h *CatalogHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.brandsHandler.Handle(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list brands")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list brands",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    brands,
	})
}

// GetFacets handles GET /api/products/facets
func (h *CatalogHandler) GetFacets(w http.ResponseWriter, r *http.Request) {
	facets, err := h.facetsHandler.Handle(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to compute facets")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to compute facets",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    facets,
	})
}

// RefreshCatalog handles POST /api/catalog/refresh. It schedules a facet
// recomputation; bursts coalesce through the debouncer.
func (h *CatalogHandler) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	h.facetsHandler.Invalidate()

	respondJSON(w, http.StatusAccepted, Response{
		Success: true,
		Message: "Catalog refresh scheduled",
	})
}

func parseFilters(params map[string][]string) domain.FilterOptions {
	get := func(key string) string {
		if vs := params[key]; len(vs) > 0 {
			return vs[0]
		}
		return ""
	}

	var filters domain.FilterOptions
	if v := get("categories"); v != "" {
		filters.Categories = strings.Split(v, ",")
	}
	if v := get("brands"); v != "" {
		filters.Brands = strings.Split(v, ",")
	}
	if v := get("tags"); v != "" {
		filters.Tags = strings.Split(v, ",")
	}

	minRaw, maxRaw := get("minPrice"), get("maxPrice")
	if minRaw != "" && maxRaw != "" {
		min, errMin := strconv.ParseFloat(minRaw, 64)
		max, errMax := strconv.ParseFloat(maxRaw, 64)
		if errMin == nil && errMax == nil {
			filters.PriceRange = &domain.PriceRange{Min: min, Max: max}
		}
	}
	if v := get("rating"); v != "" {
		if rating, err := strconv.ParseFloat(v, 64); err == nil {
			filters.Rating = &rating
		}
	}
	if v := get("inStock"); v != "" {
		if inStock, err := strconv.ParseBool(v); err == nil {
			filters.InStock = &inStock
		}
	}
	return filters
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

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// UpdateCatalogSizeMetric refreshes the catalog size gauge
func (h *CatalogHandler) UpdateCatalogSizeMetric(count int) {
	h.catalogSize.Set(float64(count))
}
