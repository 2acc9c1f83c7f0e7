package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Hazot/trec-clinical-trials-2023/internal/connectors/filesystem"
	"github.com/Hazot/trec-clinical-trials-2023/internal/core/domain"
	"github.com/Hazot/trec-clinical-trials-2023/internal/core/ports/driving"
	"github.com/Hazot/trec-clinical-trials-2023/internal/logger"
)

var (
	convertOutput  string
	convertIDs     []string
	convertIDsFile string
	convertColumns []string
	convertWatch   bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [root]",
	Short: "Flatten a corpus into one JSON file",
	Long: `Walks <root>/<split>/<bucket>/<file>, extracts the configured tag set
from every XML file and writes one JSON table.

Files that cannot be read or parsed are skipped and listed in the summary.
Without a root, paths.input from the settings is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output JSON file (default paths.output)")
	convertCmd.Flags().StringSliceVar(&convertIDs, "ids", nil, "only convert these NCT IDs (comma-separated)")
	convertCmd.Flags().StringVar(&convertIDsFile, "ids-file", "", "file with one NCT ID per line")
	convertCmd.Flags().StringSliceVar(&convertColumns, "columns", nil, "only write these columns")
	convertCmd.Flags().BoolVarP(&convertWatch, "watch", "w", false, "convert again whenever the corpus changes")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	if conversionService == nil {
		return errors.New("conversion service not configured")
	}

	settings := currentSettings()

	ids, err := collectIDs(convertIDs, convertIDsFile)
	if err != nil {
		return err
	}

	req := driving.ConvertRequest{
		Mode:    domain.ModeTagged,
		Root:    filesystem.ResolvePath(argOr(args, settings.Paths.Input)),
		Output:  filesystem.ResolvePath(valueOr(convertOutput, settings.Paths.Output)),
		IDs:     ids,
		Columns: convertColumns,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := convertOnce(ctx, cmd, req); err != nil {
		return err
	}
	if !convertWatch {
		return nil
	}
	return watchAndConvert(ctx, cmd, req)
}

// convertOnce runs one conversion with a progress bar and prints the summary.
func convertOnce(ctx context.Context, cmd *cobra.Command, req driving.ConvertRequest) error {
	bar := newProgressBar(cmd.ErrOrStderr())
	req.Progress = bar.Update

	report, err := conversionService.Convert(ctx, req)
	bar.Finish()
	if err != nil {
		return fmt.Errorf("convert failed: %w", err)
	}

	cmd.Print(renderReport("Conversion complete", report, false))
	return nil
}

// watchAndConvert reruns the full conversion after every batch of changes
// until interrupted.
func watchAndConvert(ctx context.Context, cmd *cobra.Command, req driving.ConvertRequest) error {
	if corpusWatcher == nil {
		return errors.New("corpus watcher not configured")
	}

	changes, err := corpusWatcher.Watch(ctx, req.Root)
	if err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}

	cmd.Printf("Watching %s for changes (Ctrl+C to stop)...\n", req.Root)
	for range changes {
		cmd.Println("Change detected, converting again...")
		if err := convertOnce(ctx, cmd, req); err != nil {
			if ctx.Err() != nil {
				break
			}
			logger.Warn("%v", err)
		}
	}
	return nil
}

// collectIDs merges the --ids values with the lines of an IDs file.
// Blank lines and lines starting with # are ignored.
func collectIDs(ids []string, path string) ([]string, error) {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	if path == "" {
		return out, nil
	}

	f, err := os.Open(filesystem.ResolvePath(path))
	if err != nil {
		return nil, fmt.Errorf("reading IDs file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading IDs file: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no NCT IDs in %s", domain.ErrInvalidInput, path)
	}
	return out, nil
}

func argOr(args []string, fallback string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return fallback
}

func valueOr(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
