package domain

import (
	"context"
	"regexp"
	"strings"
)

// CatalogRepository is the read-only catalog contract. The catalog is an
// ordered sequence of products; implementations never expose mutation to
// storefront callers.
type CatalogRepository interface {
	List(ctx context.Context) ([]Product, error)
	FindByID(ctx context.Context, id string) (*Product, error)
	FindBySlug(ctx context.Context, slug string) (*Product, error)
	Categories(ctx context.Context) ([]Category, error)
	Brands(ctx context.Context) ([]Brand, error)
	Count(ctx context.Context) (int, error)
}

// Availability counts products by purchasability
type Availability struct {
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
}

// Facets is the filter metadata rendered next to the product grid:
// availability counts, the category list and the global price range.
type Facets struct {
	Availability Availability `json:"availability"`
	Categories   []Category   `json:"categories"`
	PriceRange   *PriceRange  `json:"priceRange,omitempty"`
}

// ComputeFacets derives facets from the full catalog
func ComputeFacets(products []Product, categories []Category) Facets {
	f := Facets{Categories: categories}

	for i, p := range products {
		if p.InStock() {
			f.Availability.InStock++
		} else {
			f.Availability.OutOfStock++
		}

		if i == 0 {
			f.PriceRange = &PriceRange{Min: p.Price.Amount, Max: p.Price.Amount}
			continue
		}
		if p.Price.Amount < f.PriceRange.Min {
			f.PriceRange.Min = p.Price.Amount
		}
		if p.Price.Amount > f.PriceRange.Max {
			f.PriceRange.Max = p.Price.Amount
		}
	}
	return f
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a display name to a URL slug
func Slugify(text string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(text), "-")
	return strings.Trim(slug, "-")
}
