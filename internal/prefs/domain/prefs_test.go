package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/prefs/domain"
)

type staticSource domain.Scheme

func (s staticSource) CurrentScheme() domain.Scheme { return domain.Scheme(s) }

func TestParseTheme(t *testing.T) {
	for _, raw := range []string{"light", "dark", "system"} {
		theme, err := domain.ParseTheme(raw)
		require.NoError(t, err)
		assert.Equal(t, domain.Theme(raw), theme)
	}

	for _, raw := range []string{"", "blue", "Dark", "SYSTEM"} {
		_, err := domain.ParseTheme(raw)
		assert.ErrorIs(t, err, domain.ErrUnknownTheme, "raw %q", raw)
	}
}

func TestResolveExplicitThemesIgnoreSource(t *testing.T) {
	// the source reports dark, explicit themes must not consult it
	source := staticSource(domain.SchemeDark)

	prefs := domain.Resolve(domain.ThemeLight, source)
	assert.Equal(t, domain.SchemeLight, prefs.Scheme)

	prefs = domain.Resolve(domain.ThemeDark, source)
	assert.Equal(t, domain.SchemeDark, prefs.Scheme)
}

func TestResolveSystemFollowsSource(t *testing.T) {
	prefs := domain.Resolve(domain.ThemeSystem, staticSource(domain.SchemeDark))
	assert.Equal(t, domain.ThemeSystem, prefs.Theme)
	assert.Equal(t, domain.SchemeDark, prefs.Scheme)

	prefs = domain.Resolve(domain.ThemeSystem, staticSource(domain.SchemeLight))
	assert.Equal(t, domain.SchemeLight, prefs.Scheme)
}

func TestDefaultPreferences(t *testing.T) {
	prefs := domain.DefaultPreferences()
	assert.Equal(t, domain.ThemeSystem, prefs.Theme)
	assert.Equal(t, domain.SchemeLight, prefs.Scheme)
}
