package repository

import (
	"context"
	"sync"

	"github.com/tair/storefront/internal/catalog/domain"
)

// MemoryCatalogRepository serves the catalog from memory. It backs the
// static seed catalog and is the default until a product backend exists.
type MemoryCatalogRepository struct {
	mu         sync.RWMutex
	products   []domain.Product
	byID       map[string]int
	bySlug     map[string]int
	categories []domain.Category
	brands     []domain.Brand
}

// NewMemoryCatalogRepository creates a repository over the given records.
// Category product counts are derived from the product list.
func NewMemoryCatalogRepository(products []domain.Product, categories []domain.Category, brands []domain.Brand) *MemoryCatalogRepository {
	r := &MemoryCatalogRepository{
		products: products,
		byID:     make(map[string]int, len(products)),
		bySlug:   make(map[string]int, len(products)),
		brands:   brands,
	}
	for i, p := range products {
		r.byID[p.ID] = i
		r.bySlug[p.Slug] = i
	}

	counts := make(map[string]int, len(categories))
	for _, p := range products {
		counts[p.Category.ID]++
	}
	r.categories = make([]domain.Category, len(categories))
	for i, c := range categories {
		c.ProductCount = counts[c.ID]
		r.categories[i] = c
	}
	return r
}

// NewSeededCatalogRepository creates a repository over the static seed
func NewSeededCatalogRepository() *MemoryCatalogRepository {
	return NewMemoryCatalogRepository(seedProducts(), seedCategories(), seedBrands())
}

// List returns the catalog in its stable order
func (r *MemoryCatalogRepository) List(ctx context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// FindByID looks a product up by identifier
func (r *MemoryCatalogRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	p := r.products[i]
	return &p, nil
}

// FindBySlug looks a product up by URL slug
func (r *MemoryCatalogRepository) FindBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.bySlug[slug]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	p := r.products[i]
	return &p, nil
}

// Categories returns the category list with product counts
func (r *MemoryCatalogRepository) Categories(ctx context.Context) ([]domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

// Brands returns the brand list
func (r *MemoryCatalogRepository) Brands(ctx context.Context) ([]domain.Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Brand, len(r.brands))
	copy(out, r.brands)
	return out, nil
}

// Count returns the number of products in the catalog
func (r *MemoryCatalogRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products), nil
}
