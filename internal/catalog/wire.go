//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/storefront/internal/catalog/delivery/http"
	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/catalog/repository"
	"github.com/tair/storefront/kafka"
)

// ProvideCatalogRepository provides the gorm-backed catalog repository
// wrapped with tracing
func ProvideCatalogRepository(db *gorm.DB) domain.CatalogRepository {
	return repository.NewCatalogRepositoryWithTracing(repository.NewGormCatalogRepository(db))
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCatalogRepository,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, publisher *kafka.Publisher) (*http.CatalogHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewCatalogHandler,
	)
	return nil, nil
}
