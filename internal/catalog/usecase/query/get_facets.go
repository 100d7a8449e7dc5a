package query

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/pkg/debounce"
	"github.com/tair/storefront/pkg/logger"
)

// GetFacetsHandler serves filter metadata (availability counts, categories,
// global price range) from a cache. Invalidations are debounced: a burst of
// catalog refreshes recomputes the facets once, after the quiescence window.
type GetFacetsHandler struct {
	repo      domain.CatalogRepository
	debouncer *debounce.Debouncer

	mu     sync.RWMutex
	cached *domain.Facets
}

// NewGetFacetsHandler creates a facets handler with the default quiescence
// window
func NewGetFacetsHandler(repo domain.CatalogRepository) *GetFacetsHandler {
	return NewGetFacetsHandlerWithWait(repo, debounce.DefaultWait)
}

// NewGetFacetsHandlerWithWait allows tests to shorten the window
func NewGetFacetsHandlerWithWait(repo domain.CatalogRepository, wait time.Duration) *GetFacetsHandler {
	return &GetFacetsHandler{
		repo:      repo,
		debouncer: debounce.New(wait),
	}
}

// Handle returns the cached facets, computing them on first use
func (h *GetFacetsHandler) Handle(ctx context.Context) (domain.Facets, error) {
	h.mu.RLock()
	cached := h.cached
	h.mu.RUnlock()
	if cached != nil {
		return *cached, nil
	}
	return h.recompute(ctx)
}

// Invalidate schedules a facet recomputation. Repeated calls inside the
// quiescence window coalesce into a single recomputation.
func (h *GetFacetsHandler) Invalidate() {
	h.debouncer.Trigger(func() {
		if _, err := h.recompute(context.Background()); err != nil {
			logger.Logger.Warn().Err(err).Msg("Facet recomputation failed")
		}
	})
}

func (h *GetFacetsHandler) recompute(ctx context.Context) (domain.Facets, error) {
	products, err := h.repo.List(ctx)
	if err != nil {
		return domain.Facets{}, fmt.Errorf("failed to load catalog: %w", err)
	}
	categories, err := h.repo.Categories(ctx)
	if err != nil {
		return domain.Facets{}, fmt.Errorf("failed to list categories: %w", err)
	}

	facets := domain.ComputeFacets(products, categories)

	h.mu.Lock()
	h.cached = &facets
	h.mu.Unlock()

	return facets, nil
}
