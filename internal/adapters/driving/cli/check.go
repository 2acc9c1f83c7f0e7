package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Hazot/trec-clinical-trials-2023/internal/connectors/filesystem"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run data-quality checks over a corpus",
}

var checkEligibilityCmd = &cobra.Command{
	Use:   "eligibility [root]",
	Short: "List files without an eligibility element",
	Long: `Lists the corpus files whose root element has no immediate <eligibility>
child. Files that cannot be parsed are reported separately.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheckEligibility,
}

func init() {
	checkCmd.AddCommand(checkEligibilityCmd)
	rootCmd.AddCommand(checkCmd)
}

func runCheckEligibility(cmd *cobra.Command, args []string) error {
	if diagnosticService == nil {
		return errors.New("diagnostic service not configured")
	}

	root := filesystem.ResolvePath(argOr(args, currentSettings().Paths.Input))

	report, err := diagnosticService.MissingEligibility(context.Background(), root)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	for _, path := range report.Missing {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	for _, f := range report.Failures {
		cmd.PrintErrf("%s %s: %s\n", warningStyle.Render("["+string(f.Kind)+"]"), f.Path, f.Message)
	}

	cmd.PrintErrf("%d of %d files have no eligibility element (%d unreadable)\n",
		len(report.Missing), report.Checked, len(report.Failures))
	return nil
}
