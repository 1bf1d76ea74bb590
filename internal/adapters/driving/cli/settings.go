package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textstore/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the storage backend, file permissions, and logging.

Settings are stored in config.toml in the config directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsBackendCmd = &cobra.Command{
	Use:   "backend <file|memory>",
	Short: "Set the storage backend",
	Long: `Set the storage backend used by read, write, list, and watch.

Available backends:
  file    - Texts are files; names are file-system paths
  memory  - Texts are held in memory and lost when the process exits`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsBackend,
}

var settingsFileModeCmd = &cobra.Command{
	Use:   "file-mode <octal>",
	Short: "Set permissions for files the file backend creates",
	Long: `Set the permissions given to files the file backend creates, in octal.
Existing files keep their permissions when overwritten.

Example:
  textstore settings file-mode 600`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsFileMode,
}

var settingsVerboseCmd = &cobra.Command{
	Use:   "verbose <true|false>",
	Short: "Enable or disable verbose logging",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsVerbose,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsBackendCmd)
	settingsCmd.AddCommand(settingsFileModeCmd)
	settingsCmd.AddCommand(settingsVerboseCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	styles := newOutputStyles(cmd.OutOrStderr())

	cmd.Println(styles.Title.Render("Current Settings"))
	cmd.Println(styles.Muted.Render("================"))
	cmd.Println()

	cmd.Println(styles.Section.Render("[Store]"))
	cmd.Printf("  Backend: %s\n", settings.Store.Backend.Description())
	cmd.Printf("  File mode: %#o\n", uint32(settings.Store.FileMode))
	cmd.Println()

	cmd.Println(styles.Section.Render("[Log]"))
	cmd.Printf("  Verbose: %t\n", settings.Log.Verbose)

	return nil
}

func runSettingsBackend(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	backend, err := domain.ParseBackend(args[0])
	if err != nil {
		return err
	}

	if err := settingsService.SetBackend(backend); err != nil {
		return fmt.Errorf("failed to set backend: %w", err)
	}

	cmd.Printf("Storage backend set to: %s\n", backend.Description())
	return nil
}

func runSettingsFileMode(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	value, err := strconv.ParseUint(args[0], 8, 32)
	if err != nil {
		return fmt.Errorf("%w: file mode %q is not an octal number", domain.ErrInvalidInput, args[0])
	}

	mode := fs.FileMode(value)
	if err := settingsService.SetFileMode(mode); err != nil {
		return fmt.Errorf("failed to set file mode: %w", err)
	}

	cmd.Printf("File mode set to: %#o\n", uint32(mode))
	return nil
}

func runSettingsVerbose(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	verbose, err := strconv.ParseBool(args[0])
	if err != nil {
		return fmt.Errorf("%w: %q is not true or false", domain.ErrInvalidInput, args[0])
	}

	if err := settingsService.SetVerbose(verbose); err != nil {
		return fmt.Errorf("failed to set verbose: %w", err)
	}

	cmd.Printf("Verbose logging: %t\n", verbose)
	return nil
}
