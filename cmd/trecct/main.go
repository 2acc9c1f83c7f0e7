// Command trecct converts the TREC 2023 clinical trial XML corpus into JSON.
package main

import (
	"os"
	"path/filepath"

	"github.com/Hazot/trec-clinical-trials-2023/internal/adapters/driven/config/file"
	"github.com/Hazot/trec-clinical-trials-2023/internal/adapters/driven/storage/sqlite"
	"github.com/Hazot/trec-clinical-trials-2023/internal/adapters/driving/cli"
	"github.com/Hazot/trec-clinical-trials-2023/internal/connectors/filesystem"
	"github.com/Hazot/trec-clinical-trials-2023/internal/core/domain"
	"github.com/Hazot/trec-clinical-trials-2023/internal/core/ports/driven"
	"github.com/Hazot/trec-clinical-trials-2023/internal/core/services"
	"github.com/Hazot/trec-clinical-trials-2023/internal/logger"
	"github.com/Hazot/trec-clinical-trials-2023/internal/normalisers/rawxml"
	"github.com/Hazot/trec-clinical-trials-2023/internal/normalisers/trial"
	"github.com/Hazot/trec-clinical-trials-2023/internal/normalisers/xmltree"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := cli.Execute(version, bootstrap); err != nil {
		os.Exit(1)
	}
}

// bootstrap wires the adapters into the services.
func bootstrap(opts cli.Options) (*cli.Services, func(), error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, nil, err
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("Using default settings: %v", err)
		defaults := domain.DefaultSettings()
		settings = &defaults
	}

	tags, err := settings.Extract.ResolveTags()
	if err != nil {
		tags = domain.DefaultTagSet()
	}

	walker := filesystem.New(
		filesystem.WithHidden(settings.Walk.IncludeHidden),
		filesystem.WithExclude(settings.Walk.Exclude...),
	)

	var runStore driven.RunStore
	cleanup := func() {}
	if settings.History.Enabled {
		dataDir := settings.Paths.DataDir
		if dataDir == "" && opts.ConfigDir != "" {
			dataDir = filepath.Join(opts.ConfigDir, "data")
		}
		store, err := sqlite.NewStore(filesystem.ResolvePath(dataDir))
		if err != nil {
			logger.Warn("Run history disabled: %v", err)
		} else {
			runStore = store.RunStore()
			cleanup = func() { _ = store.Close() }
		}
	}

	return &cli.Services{
		Conversion:  services.NewConversionService(walker, runStore, trial.New(tags), rawxml.New()),
		Diagnostics: services.NewDiagnosticService(walker, xmltree.NewInspector()),
		Runs:        services.NewRunService(runStore),
		Settings:    settingsService,
		Watcher:     filesystem.NewWatcher(filesystem.DefaultDebounce),
	}, cleanup, nil
}
