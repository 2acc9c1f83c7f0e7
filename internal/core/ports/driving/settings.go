package driving

import "github.com/Hazot/trec-clinical-trials-2023/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.Settings, error)

	// Set parses value for the given dotted key and persists it.
	Set(key, value string) error

	// Keys returns every settable key.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings
}
