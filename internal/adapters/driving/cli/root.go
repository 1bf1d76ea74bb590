// Package cli provides the cobra command tree for the textstore binary.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textstore/internal/core/ports/driving"
	"github.com/custodia-labs/textstore/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services used by commands. Built from configuration on first use unless
// injected with SetServices.
var (
	textService     driving.TextService
	settingsService driving.SettingsService
)

// Persistent flags.
var (
	verboseFlag   bool
	configDirFlag string
	backendFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "textstore",
	Short: "Read and write named texts",
	Long: `textstore reads and writes whole texts by name.

With the file backend (the default) a name is a file-system path and every
write atomically replaces the file. With the memory backend texts live only
for the lifetime of the process, which is mostly useful with "mcp serve".`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config", "", "config directory (default ~/.textstore)")
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "storage backend: file or memory (overrides config)")
}

// SetServices injects the services commands use, bypassing configuration.
func SetServices(text driving.TextService, settings driving.SettingsService) {
	textService = text
	settingsService = settings
}

// Execute runs the root command. Long-running commands stop when ctx is done.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setupServices(_ *cobra.Command, _ []string) error {
	if verboseFlag {
		logger.SetVerbose(true)
	}

	if textService != nil && settingsService != nil {
		return nil
	}

	text, settings, err := buildServices(configDirFlag, backendFlag)
	if err != nil {
		return err
	}

	SetServices(text, settings)
	return nil
}
