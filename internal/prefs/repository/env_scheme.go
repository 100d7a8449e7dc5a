package repository

import (
	"os"

	"github.com/tair/storefront/internal/prefs/domain"
)

// EnvSchemeSource resolves the platform color scheme from the
// PREFS_SYSTEM_SCHEME environment variable, defaulting to light. A server
// has no OS-level appearance, the deployment decides instead.
type EnvSchemeSource struct{}

func (EnvSchemeSource) CurrentScheme() domain.Scheme {
	if os.Getenv("PREFS_SYSTEM_SCHEME") == string(domain.SchemeDark) {
		return domain.SchemeDark
	}
	return domain.SchemeLight
}

// StaticSchemeSource always reports the same scheme; used in tests
type StaticSchemeSource domain.Scheme

func (s StaticSchemeSource) CurrentScheme() domain.Scheme {
	return domain.Scheme(s)
}
