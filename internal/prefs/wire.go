//go:build wireinject
// +build wireinject

package prefs

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"

	"github.com/tair/storefront/internal/prefs/delivery/http"
	"github.com/tair/storefront/internal/prefs/domain"
	"github.com/tair/storefront/internal/prefs/repository"
)

// ProvidePreferencesRepository provides the redis-backed preferences
// repository
func ProvidePreferencesRepository(client *redis.Client) domain.PreferencesRepository {
	return repository.NewRedisPreferencesRepository(client)
}

// ProvideSchemeSource provides the environment-backed scheme source
func ProvideSchemeSource() domain.SchemeSource {
	return repository.EnvSchemeSource{}
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvidePreferencesRepository,
	ProvideSchemeSource,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(client *redis.Client) (*http.PrefsHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewPrefsHandler,
	)
	return nil, nil
}
