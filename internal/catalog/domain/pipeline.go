package domain

import (
	"math"
	"sort"
	"strings"
)

// SortOption selects the ordering applied by SortProducts
type SortOption string

const (
	SortFeatured  SortOption = "featured"
	SortNewest    SortOption = "newest"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	SortRating    SortOption = "rating"
	SortPopular   SortOption = "popular"
)

// ParseSortOption normalizes a raw sort parameter. Unknown values fall back
// to the featured ordering rather than being rejected.
func ParseSortOption(raw string) SortOption {
	switch SortOption(raw) {
	case SortNewest, SortPriceAsc, SortPriceDesc, SortRating, SortPopular:
		return SortOption(raw)
	default:
		return SortFeatured
	}
}

// PriceRange bounds the price filter, inclusive on both ends
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterOptions is a set of independent AND criteria. A nil or empty field
// imposes no constraint on that dimension.
type FilterOptions struct {
	Categories []string    `json:"categories,omitempty"`
	Brands     []string    `json:"brands,omitempty"`
	PriceRange *PriceRange `json:"priceRange,omitempty"`
	Rating     *float64    `json:"rating,omitempty"`
	InStock    *bool       `json:"inStock,omitempty"`
	Tags       []string    `json:"tags,omitempty"`
}

// PaginationMeta describes a page of results. It is derived on every
// pipeline run, never stored.
type PaginationMeta struct {
	CurrentPage     int  `json:"currentPage"`
	TotalPages      int  `json:"totalPages"`
	PageSize        int  `json:"pageSize"`
	TotalItems      int  `json:"totalItems"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// SearchProducts retains products whose name, description, brand name or
// category name contains the query, case-insensitively. An empty or
// whitespace-only query passes the input through unchanged. The input slice
// is never mutated.
func SearchProducts(products []Product, query string) []Product {
	if strings.TrimSpace(query) == "" {
		return products
	}

	q := strings.ToLower(query)
	matched := make([]Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Brand.Name), q) ||
			strings.Contains(strings.ToLower(p.Category.Name), q) {
			matched = append(matched, p)
		}
	}
	return matched
}

// FilterProducts retains products passing every configured criterion.
// A price range with min > max matches nothing; that is caller input, not
// an error.
func FilterProducts(products []Product, filters FilterOptions) []Product {
	matched := make([]Product, 0, len(products))
	for _, p := range products {
		if matchesFilters(p, filters) {
			matched = append(matched, p)
		}
	}
	return matched
}

func matchesFilters(p Product, f FilterOptions) bool {
	if len(f.Categories) > 0 && !containsString(f.Categories, p.Category.ID) {
		return false
	}
	if len(f.Brands) > 0 && !containsString(f.Brands, p.Brand.ID) {
		return false
	}
	if f.PriceRange != nil {
		if p.Price.Amount < f.PriceRange.Min || p.Price.Amount > f.PriceRange.Max {
			return false
		}
	}
	if f.Rating != nil && p.Rating.Average < *f.Rating {
		return false
	}
	if f.InStock != nil && *f.InStock && p.Stock.Status != StockInStock {
		return false
	}
	if len(f.Tags) > 0 && !hasAnyTag(p.Tags, f.Tags) {
		return false
	}
	return true
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func hasAnyTag(productTags, wanted []string) bool {
	for _, w := range wanted {
		if containsString(productTags, w) {
			return true
		}
	}
	return false
}

// SortProducts returns a sorted copy of products. The sort is stable; the
// featured ordering only moves featured products ahead of the rest, ties on
// either side keep their catalog order.
func SortProducts(products []Product, option SortOption) []Product {
	sorted := make([]Product, len(products))
	copy(sorted, products)

	switch option {
	case SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price.Amount < sorted[j].Price.Amount
		})
	case SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price.Amount > sorted[j].Price.Amount
		})
	case SortRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating.Average > sorted[j].Rating.Average
		})
	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	case SortPopular:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating.Count > sorted[j].Rating.Count
		})
	default: // featured
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].IsFeatured && !sorted[j].IsFeatured
		})
	}
	return sorted
}

// Paginate slices items to the requested 1-based page. A page past the end
// yields an empty page, never an error. A non-positive pageSize falls back
// to DefaultPageSize so the result is total for all inputs.
func Paginate(items []Product, page, pageSize int) ([]Product, PaginationMeta) {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	totalItems := len(items)
	totalPages := int(math.Ceil(float64(totalItems) / float64(pageSize)))

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	pageItems := make([]Product, end-start)
	copy(pageItems, items[start:end])

	return pageItems, PaginationMeta{
		CurrentPage:     page,
		TotalPages:      totalPages,
		PageSize:        pageSize,
		TotalItems:      totalItems,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}

// DefaultPageSize matches the storefront product grid
const DefaultPageSize = 12
