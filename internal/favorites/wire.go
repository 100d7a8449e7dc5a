//go:build wireinject
// +build wireinject

package favorites

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"

	catalogdomain "github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/favorites/delivery/http"
	favdomain "github.com/tair/storefront/internal/favorites/domain"
	"github.com/tair/storefront/internal/favorites/repository"
	"github.com/tair/storefront/kafka"
)

// ProvideFavoritesRepository provides the redis-backed favorites repository
func ProvideFavoritesRepository(client *redis.Client) favdomain.FavoritesRepository {
	return repository.NewRedisFavoritesRepository(client)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideFavoritesRepository,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(client *redis.Client, catalog catalogdomain.CatalogRepository, publisher *kafka.Publisher) (*http.FavoritesHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewFavoritesHandler,
	)
	return nil, nil
}
