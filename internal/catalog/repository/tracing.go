package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/storefront/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// CatalogRepositoryWithTracing decorates any CatalogRepository with
// OpenTelemetry spans
type CatalogRepositoryWithTracing struct {
	inner domain.CatalogRepository
}

func NewCatalogRepositoryWithTracing(inner domain.CatalogRepository) *CatalogRepositoryWithTracing {
	return &CatalogRepositoryWithTracing{inner: inner}
}

func (r *CatalogRepositoryWithTracing) List(ctx context.Context) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.List")
	defer span.End()

	products, err := r.inner.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("catalog.size", len(products)))
	return products, nil
}

func (r *CatalogRepositoryWithTracing) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.String("product.id", id)),
	)
	defer span.End()

	product, err := r.inner.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("product.slug", product.Slug),
		attribute.String("product.name", product.Name),
	)
	return product, nil
}

func (r *CatalogRepositoryWithTracing) FindBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindBySlug",
		trace.WithAttributes(attribute.String("product.slug", slug)),
	)
	defer span.End()

	product, err := r.inner.FindBySlug(ctx, slug)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("product.id", product.ID))
	return product, nil
}

func (r *CatalogRepositoryWithTracing) Categories(ctx context.Context) ([]domain.Category, error) {
	ctx, span := tracer.Start(ctx, "repository.Categories")
	defer span.End()

	categories, err := r.inner.Categories(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("catalog.categories", len(categories)))
	return categories, nil
}

func (r *CatalogRepositoryWithTracing) Brands(ctx context.Context) ([]domain.Brand, error) {
	ctx, span := tracer.Start(ctx, "repository.Brands")
	defer span.End()

	brands, err := r.inner.Brands(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("catalog.brands", len(brands)))
	return brands, nil
}

func (r *CatalogRepositoryWithTracing) Count(ctx context.Context) (int, error) {
	ctx, span := tracer.Start(ctx, "repository.Count")
	defer span.End()

	count, err := r.inner.Count(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Int("catalog.size", count))
	return count, nil
}
