package domain

import (
	"context"
	"errors"
)

var ErrUnknownTheme = errors.New("unknown theme")

// Theme is the user-selected appearance preference
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// ParseTheme validates a raw theme value
func ParseTheme(raw string) (Theme, error) {
	switch Theme(raw) {
	case ThemeLight, ThemeDark, ThemeSystem:
		return Theme(raw), nil
	}
	return "", ErrUnknownTheme
}

// Scheme is the concrete appearance applied after resolving "system"
type Scheme string

const (
	SchemeLight Scheme = "light"
	SchemeDark  Scheme = "dark"
)

// SchemeSource reports the platform color scheme, consulted once when a
// "system" theme is stored. The resolution is not revisited afterwards.
type SchemeSource interface {
	CurrentScheme() Scheme
}

// Preferences are one session's UI settings. Scheme is the resolved
// appearance; it equals the theme except when the theme is "system".
type Preferences struct {
	Theme  Theme  `json:"theme"`
	Scheme Scheme `json:"scheme"`
}

// DefaultPreferences is the state before any theme was chosen
func DefaultPreferences() Preferences {
	return Preferences{Theme: ThemeSystem, Scheme: SchemeLight}
}

// Resolve computes the preferences for a theme choice, consulting the
// scheme source only for "system"
func Resolve(theme Theme, source SchemeSource) Preferences {
	prefs := Preferences{Theme: theme}
	switch theme {
	case ThemeLight:
		prefs.Scheme = SchemeLight
	case ThemeDark:
		prefs.Scheme = SchemeDark
	default:
		prefs.Scheme = source.CurrentScheme()
	}
	return prefs
}

// PreferencesRepository persists one preferences record per session. Load
// returns the defaults for unknown sessions and for records that fail to
// decode.
type PreferencesRepository interface {
	Load(ctx context.Context, sessionID string) (Preferences, error)
	Save(ctx context.Context, sessionID string, prefs Preferences) error
}
