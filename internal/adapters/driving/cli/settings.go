package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Hazot/trec-clinical-trials-2023/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print every setting",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Changes one setting and saves it to config.toml.

List settings (extract.tags, walk.exclude) take comma-separated values;
an empty value clears the list. Boolean settings take true or false.`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}

	cmd.Println(titleStyle.Render("Settings"))
	for _, key := range settingsService.Keys() {
		cmd.Printf("  %s = %s\n", key, settingValue(settings, key))
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return fmt.Errorf("%w (keys: %s)", err, strings.Join(settingsService.Keys(), ", "))
		}
		return err
	}

	cmd.Printf("%s %s = %s\n", successStyle.Render("Saved"), key, value)
	return nil
}

// settingValue renders one setting for display.
func settingValue(s *domain.Settings, key string) string {
	switch key {
	case "extract.tag_set":
		return s.Extract.TagSet
	case "extract.tags":
		return listValue(s.Extract.Tags)
	case "walk.include_hidden":
		return strconv.FormatBool(s.Walk.IncludeHidden)
	case "walk.exclude":
		return listValue(s.Walk.Exclude)
	case "paths.input":
		return s.Paths.Input
	case "paths.output":
		return s.Paths.Output
	case "paths.data_dir":
		if s.Paths.DataDir == "" {
			return "(default)"
		}
		return s.Paths.DataDir
	case "history.enabled":
		return strconv.FormatBool(s.History.Enabled)
	default:
		return ""
	}
}

func listValue(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	return "[" + strings.Join(items, ", ") + "]"
}
