package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Hazot/trec-clinical-trials-2023/internal/connectors/filesystem"
)

var (
	pathsIDs     []string
	pathsIDsFile string
)

var pathsCmd = &cobra.Command{
	Use:   "paths [root]",
	Short: "Print the corpus files of the given NCT IDs",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPaths,
}

func init() {
	pathsCmd.Flags().StringSliceVar(&pathsIDs, "ids", nil, "NCT IDs to look up (comma-separated)")
	pathsCmd.Flags().StringVar(&pathsIDsFile, "ids-file", "", "file with one NCT ID per line")
	rootCmd.AddCommand(pathsCmd)
}

func runPaths(cmd *cobra.Command, args []string) error {
	if diagnosticService == nil {
		return errors.New("diagnostic service not configured")
	}

	ids, err := collectIDs(pathsIDs, pathsIDsFile)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return errors.New("at least one NCT ID is required (--ids or --ids-file)")
	}

	root := filesystem.ResolvePath(argOr(args, currentSettings().Paths.Input))

	paths, err := diagnosticService.PathsForIDs(context.Background(), root, ids)
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	for _, p := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	if len(paths) < len(ids) {
		cmd.PrintErrf("Found %d of %d requested IDs\n", len(paths), len(ids))
	}
	return nil
}
