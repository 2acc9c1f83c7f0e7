package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Hazot/trec-clinical-trials-2023/internal/connectors/filesystem"
	"github.com/Hazot/trec-clinical-trials-2023/internal/core/domain"
	"github.com/Hazot/trec-clinical-trials-2023/internal/core/ports/driving"
)

var rawOutput string

var rawCmd = &cobra.Command{
	Use:   "raw <split-dir>",
	Short: "Convert every document of one split in full",
	Long: `Converts every file under <split-dir>/<bucket>/<file> in full, attributes
included, and writes one JSON table with a column per root element.

By default the table is written next to paths.output as data_<split>.json,
where <split> is the part of the directory name after its last dot
(ClinicalTrials.2023-05-08.trials0 gives data_trials0.json).`,
	Args: cobra.ExactArgs(1),
	RunE: runRaw,
}

func init() {
	rawCmd.Flags().StringVarP(&rawOutput, "output", "o", "", "output JSON file")
	rootCmd.AddCommand(rawCmd)
}

func runRaw(cmd *cobra.Command, args []string) error {
	if conversionService == nil {
		return errors.New("conversion service not configured")
	}

	split := filesystem.ResolvePath(args[0])
	output := rawOutput
	if output == "" {
		output = rawOutputFor(split, currentSettings().Paths.Output)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return convertOnce(ctx, cmd, driving.ConvertRequest{
		Mode:   domain.ModeRaw,
		Root:   split,
		Output: filesystem.ResolvePath(output),
	})
}

// rawOutputFor names the default output file for a split directory.
func rawOutputFor(split, defaultOutput string) string {
	name := filepath.Base(filepath.Clean(split))
	if i := strings.LastIndex(name, "."); i >= 0 && i < len(name)-1 {
		name = name[i+1:]
	}
	return filepath.Join(filepath.Dir(defaultOutput), "data_"+name+".json")
}
