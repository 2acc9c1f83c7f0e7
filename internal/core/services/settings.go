package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Hazot/trec-clinical-trials-2023/internal/core/domain"
	"github.com/Hazot/trec-clinical-trials-2023/internal/core/ports/driven"
	"github.com/Hazot/trec-clinical-trials-2023/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyTagSet        = "extract.tag_set"
	keyTags          = "extract.tags"
	keyIncludeHidden = "walk.include_hidden"
	keyExclude       = "walk.exclude"
	keyInput         = "paths.input"
	keyOutput        = "paths.output"
	keyDataDir       = "paths.data_dir"
	keyHistory       = "history.enabled"
)

var settingKeys = []string{
	keyTagSet,
	keyTags,
	keyIncludeHidden,
	keyExclude,
	keyInput,
	keyOutput,
	keyDataDir,
	keyHistory,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		Extract: domain.ExtractSettings{
			TagSet: s.getString(keyTagSet, defaults.Extract.TagSet),
			Tags:   s.configStore.GetStringSlice(keyTags),
		},
		Walk: domain.WalkSettings{
			IncludeHidden: s.getBool(keyIncludeHidden, defaults.Walk.IncludeHidden),
			Exclude:       s.configStore.GetStringSlice(keyExclude),
		},
		Paths: domain.PathSettings{
			Input:   s.getString(keyInput, defaults.Paths.Input),
			Output:  s.getString(keyOutput, defaults.Paths.Output),
			DataDir: s.configStore.GetString(keyDataDir),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(keyHistory, defaults.History.Enabled),
		},
	}

	if _, err := settings.Extract.ResolveTags(); err != nil {
		return nil, fmt.Errorf("invalid extract settings in %s: %w", s.configStore.Path(), err)
	}

	return settings, nil
}

// Set parses value for key and persists it.
// List values are comma-separated; an empty value clears the list.
func (s *SettingsService) Set(key, value string) error {
	switch key {
	case keyTagSet:
		if _, err := domain.LookupTagSet(value); err != nil {
			return err
		}
		return s.configStore.Set(key, value)

	case keyTags:
		tags := splitList(value)
		if len(tags) > 0 {
			if err := domain.TagSet(tags).Validate(); err != nil {
				return err
			}
		}
		return s.configStore.Set(key, tags)

	case keyExclude:
		return s.configStore.Set(key, splitList(value))

	case keyIncludeHidden, keyHistory:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s expects true or false, got %q", domain.ErrInvalidInput, key, value)
		}
		return s.configStore.Set(key, b)

	case keyInput, keyOutput, keyDataDir:
		return s.configStore.Set(key, value)

	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

// Keys returns every settable key.
func (s *SettingsService) Keys() []string {
	return append([]string(nil), settingKeys...)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
