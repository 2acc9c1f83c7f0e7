// Package cli provides the trecct command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/Hazot/trec-clinical-trials-2023/internal/core/domain"
	"github.com/Hazot/trec-clinical-trials-2023/internal/core/ports/driven"
	"github.com/Hazot/trec-clinical-trials-2023/internal/core/ports/driving"
	"github.com/Hazot/trec-clinical-trials-2023/internal/logger"
)

// Services are the ports the commands run against.
type Services struct {
	Conversion  driving.ConversionService
	Diagnostics driving.DiagnosticService
	Runs        driving.RunService
	Settings    driving.SettingsService

	// Watcher is optional. Without it convert --watch is unavailable.
	Watcher driven.CorpusWatcher
}

// Options are the global flags the bootstrap needs.
type Options struct {
	// ConfigDir overrides ~/.trecct.
	ConfigDir string
}

// Bootstrap builds the services once flags are parsed.
// The returned cleanup function runs after the command completes.
type Bootstrap func(opts Options) (*Services, func(), error)

var (
	version = "dev"

	bootstrap Bootstrap
	cleanup   func()

	conversionService driving.ConversionService
	diagnosticService driving.DiagnosticService
	runService        driving.RunService
	settingsService   driving.SettingsService
	corpusWatcher     driven.CorpusWatcher

	verbosity int
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "trecct",
	Short: "Convert TREC 2023 clinical trial XML into a JSON corpus",
	Long: `trecct flattens the ClinicalTrials.gov XML records of the TREC 2023
Clinical Trials track into one column-oriented JSON file.

The corpus is read from <root>/<split>/<bucket>/<NCT id>.xml and every
file is reduced to a fixed set of tags. Settings are read from
~/.trecct/config.toml.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log output (-v info, -vv debug)")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.trecct)")
}

// Execute runs the root command.
func Execute(v string, b Bootstrap) error {
	version = v
	bootstrap = b
	defer func() {
		if cleanup != nil {
			cleanup()
			cleanup = nil
		}
	}()
	return rootCmd.Execute()
}

// initServices applies the log level and builds the services unless they
// were already injected.
func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbosity(verbosity)

	if bootstrap == nil || conversionService != nil {
		return nil
	}

	svc, done, err := bootstrap(Options{ConfigDir: configDir})
	if err != nil {
		return err
	}
	cleanup = done

	conversionService = svc.Conversion
	diagnosticService = svc.Diagnostics
	runService = svc.Runs
	settingsService = svc.Settings
	corpusWatcher = svc.Watcher
	return nil
}

// currentSettings returns the configured settings, or defaults when they
// cannot be read.
func currentSettings() domain.Settings {
	if settingsService == nil {
		return domain.DefaultSettings()
	}
	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("Using default settings: %v", err)
		return domain.DefaultSettings()
	}
	return *settings
}
