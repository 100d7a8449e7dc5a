package query

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/catalog/domain"
)

// ListCategoriesHandler returns the category taxonomy
type ListCategoriesHandler struct {
	repo domain.CatalogRepository
}

func NewListCategoriesHandler(repo domain.CatalogRepository) *ListCategoriesHandler {
	return &ListCategoriesHandler{repo: repo}
}

func (h *ListCategoriesHandler) Handle(ctx context.Context) ([]domain.Category, error) {
	categories, err := h.repo.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// ListBrandsHandler returns the brand list
type ListBrandsHandler struct {
	repo domain.CatalogRepository
}

func NewListBrandsHandler(repo domain.CatalogRepository) *ListBrandsHandler {
	return &ListBrandsHandler{repo: repo}
}

func (h *ListBrandsHandler) Handle(ctx context.Context) ([]domain.Brand, error) {
	brands, err := h.repo.Brands(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	return brands, nil
}
