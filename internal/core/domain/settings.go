package domain

import "path/filepath"

// Default paths, relative to the working directory.
const (
	DefaultInputPath  = "data/raw"
	DefaultOutputPath = "data/processed/data.json"
)

// Settings holds all configurable trecct options.
type Settings struct {
	Extract ExtractSettings
	Walk    WalkSettings
	Paths   PathSettings
	History HistorySettings
}

// ExtractSettings configures the flattener.
type ExtractSettings struct {
	// TagSet names a built-in tag set ("default" or "full").
	TagSet string

	// Tags overrides TagSet with an explicit list when non-empty.
	Tags []string
}

// WalkSettings configures corpus discovery.
type WalkSettings struct {
	// IncludeHidden keeps entries whose name starts with a dot.
	IncludeHidden bool

	// Exclude holds gitignore-style patterns relative to the corpus root.
	Exclude []string
}

// PathSettings holds default input and output locations.
type PathSettings struct {
	Input  string
	Output string

	// DataDir holds the run history database. Empty means ~/.trecct/data.
	DataDir string
}

// HistorySettings configures the run ledger.
type HistorySettings struct {
	Enabled bool
}

// DefaultSettings returns settings with sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		Extract: ExtractSettings{
			TagSet: TagSetDefault,
		},
		Paths: PathSettings{
			Input:  filepath.FromSlash(DefaultInputPath),
			Output: filepath.FromSlash(DefaultOutputPath),
		},
		History: HistorySettings{
			Enabled: true,
		},
	}
}

// ResolveTags returns the tag set the settings select.
func (s ExtractSettings) ResolveTags() (TagSet, error) {
	if len(s.Tags) > 0 {
		tags := TagSet(append([]string(nil), s.Tags...))
		if err := tags.Validate(); err != nil {
			return nil, err
		}
		return tags, nil
	}
	return LookupTagSet(s.TagSet)
}
