package command_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/prefs/domain"
	"github.com/tair/storefront/internal/prefs/repository"
	"github.com/tair/storefront/internal/prefs/usecase/command"
	"github.com/tair/storefront/internal/prefs/usecase/query"
)

const testSession = "session-test"

func TestSetThemePersistsResolvedScheme(t *testing.T) {
	ctx := context.Background()
	prefs := repository.NewMemoryPreferencesRepository()
	set := command.NewSetThemeHandler(prefs, repository.StaticSchemeSource(domain.SchemeDark))

	saved, err := set.Handle(ctx, command.SetThemeCommand{SessionID: testSession, Theme: "dark"})
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, saved.Theme)
	assert.Equal(t, domain.SchemeDark, saved.Scheme)

	loaded, err := query.NewGetPreferencesHandler(prefs).Handle(ctx, query.GetPreferencesQuery{SessionID: testSession})
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestSetThemeSystemResolvesOnceAtSetTime(t *testing.T) {
	ctx := context.Background()
	prefs := repository.NewMemoryPreferencesRepository()

	set := command.NewSetThemeHandler(prefs, repository.StaticSchemeSource(domain.SchemeDark))
	saved, err := set.Handle(ctx, command.SetThemeCommand{SessionID: testSession, Theme: "system"})
	require.NoError(t, err)
	assert.Equal(t, domain.SchemeDark, saved.Scheme)

	// the stored scheme does not move when the platform scheme changes,
	// only a new SetTheme re-resolves it
	loaded, err := query.NewGetPreferencesHandler(prefs).Handle(ctx, query.GetPreferencesQuery{SessionID: testSession})
	require.NoError(t, err)
	assert.Equal(t, domain.SchemeDark, loaded.Scheme)

	set = command.NewSetThemeHandler(prefs, repository.StaticSchemeSource(domain.SchemeLight))
	saved, err = set.Handle(ctx, command.SetThemeCommand{SessionID: testSession, Theme: "system"})
	require.NoError(t, err)
	assert.Equal(t, domain.SchemeLight, saved.Scheme)
}

func TestSetThemeRejectsUnknownWithoutSaving(t *testing.T) {
	ctx := context.Background()
	prefs := repository.NewMemoryPreferencesRepository()
	set := command.NewSetThemeHandler(prefs, repository.EnvSchemeSource{})

	_, err := set.Handle(ctx, command.SetThemeCommand{SessionID: testSession, Theme: "dark"})
	require.NoError(t, err)

	_, err = set.Handle(ctx, command.SetThemeCommand{SessionID: testSession, Theme: "sepia"})
	assert.ErrorIs(t, err, domain.ErrUnknownTheme)

	loaded, err := query.NewGetPreferencesHandler(prefs).Handle(ctx, query.GetPreferencesQuery{SessionID: testSession})
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, loaded.Theme)
}

func TestGetPreferencesDefaultsForFreshSession(t *testing.T) {
	prefs := repository.NewMemoryPreferencesRepository()

	loaded, err := query.NewGetPreferencesHandler(prefs).Handle(context.Background(), query.GetPreferencesQuery{SessionID: "fresh"})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPreferences(), loaded)
}
