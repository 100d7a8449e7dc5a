package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/tair/storefront/internal/catalog/domain"
)

// productRow persists a product as an indexed envelope around the full
// domain document. Lookup columns are denormalized for querying; the
// document column is authoritative.
type productRow struct {
	ID         string         `gorm:"primaryKey"`
	Slug       string         `gorm:"uniqueIndex;not null"`
	Name       string         `gorm:"not null"`
	BrandID    string         `gorm:"index"`
	CategoryID string         `gorm:"index"`
	Position   int            `gorm:"index;not null"`
	Document   domain.Product `gorm:"serializer:json"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (productRow) TableName() string { return "catalog_products" }

type categoryRow struct {
	ID       string          `gorm:"primaryKey"`
	Slug     string          `gorm:"uniqueIndex;not null"`
	Position int             `gorm:"index;not null"`
	Document domain.Category `gorm:"serializer:json"`
}

func (categoryRow) TableName() string { return "catalog_categories" }

type brandRow struct {
	ID       string       `gorm:"primaryKey"`
	Slug     string       `gorm:"uniqueIndex;not null"`
	Position int          `gorm:"index;not null"`
	Document domain.Brand `gorm:"serializer:json"`
}

func (brandRow) TableName() string { return "catalog_brands" }

// GormCatalogRepository serves the catalog from PostgreSQL. The storefront
// still treats it as read-only; rows are written only by Seed.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&productRow{}, &categoryRow{}, &brandRow{})
}

// Seed loads the given records when the product table is empty. Position
// preserves catalog order, which the featured sort depends on.
func (r *GormCatalogRepository) Seed(products []domain.Product, categories []domain.Category, brands []domain.Brand) error {
	var count int64
	if err := r.db.Model(&productRow{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		for i, p := range products {
			row := productRow{
				ID: p.ID, Slug: p.Slug, Name: p.Name,
				BrandID: p.Brand.ID, CategoryID: p.Category.ID,
				Position: i, Document: p,
				CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		counts := make(map[string]int, len(categories))
		for _, p := range products {
			counts[p.Category.ID]++
		}
		for i, c := range categories {
			c.ProductCount = counts[c.ID]
			if err := tx.Create(&categoryRow{ID: c.ID, Slug: c.Slug, Position: i, Document: c}).Error; err != nil {
				return err
			}
		}
		for i, b := range brands {
			if err := tx.Create(&brandRow{ID: b.ID, Slug: b.Slug, Position: i, Document: b}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormCatalogRepository) List(ctx context.Context) ([]domain.Product, error) {
	var rows []productRow
	err := r.db.WithContext(ctx).Order("position").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	products := make([]domain.Product, len(rows))
	for i, row := range rows {
		products[i] = row.Document
	}
	return products, nil
}

func (r *GormCatalogRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	var row productRow
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	p := row.Document
	return &p, nil
}

func (r *GormCatalogRepository) FindBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	var row productRow
	err := r.db.WithContext(ctx).First(&row, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	p := row.Document
	return &p, nil
}

func (r *GormCatalogRepository) Categories(ctx context.Context) ([]domain.Category, error) {
	var rows []categoryRow
	err := r.db.WithContext(ctx).Order("position").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	categories := make([]domain.Category, len(rows))
	for i, row := range rows {
		categories[i] = row.Document
	}
	return categories, nil
}

func (r *GormCatalogRepository) Brands(ctx context.Context) ([]domain.Brand, error) {
	var rows []brandRow
	err := r.db.WithContext(ctx).Order("position").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	brands := make([]domain.Brand, len(rows))
	for i, row := range rows {
		brands[i] = row.Document
	}
	return brands, nil
}

func (r *GormCatalogRepository) Count(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&productRow{}).Count(&count).Error
	return int(count), err
}
