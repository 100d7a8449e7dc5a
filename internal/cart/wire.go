//go:build wireinject
// +build wireinject

package cart

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"

	"github.com/tair/storefront/internal/cart/delivery/http"
	cartdomain "github.com/tair/storefront/internal/cart/domain"
	"github.com/tair/storefront/internal/cart/repository"
	catalogdomain "github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/kafka"
)

// ProvideCartRepository provides the redis-backed cart repository
func ProvideCartRepository(client *redis.Client) cartdomain.CartRepository {
	return repository.NewRedisCartRepository(client)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCartRepository,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(client *redis.Client, catalog catalogdomain.CatalogRepository, publisher *kafka.Publisher) (*http.CartHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewCartHandler,
	)
	return nil, nil
}
