package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textstore/internal/core/domain"
)

var watchCmd = &cobra.Command{
	Use:   "watch <name>",
	Short: "Print a text every time it changes",
	Long: `Prints the current text stored under a name, then prints it again each
time it changes, until interrupted. Only the file backend supports watching.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if textService == nil {
		return errors.New("text service not configured")
	}

	name := args[0]
	out := cmd.OutOrStdout()
	printText := func(content string) {
		fmt.Fprint(out, content)
		if !strings.HasSuffix(content, "\n") {
			fmt.Fprintln(out)
		}
	}

	content, err := textService.Read(name)
	switch {
	case err == nil:
		printText(content)
	case errors.Is(err, domain.ErrNotFound):
		styles := newOutputStyles(cmd.ErrOrStderr())
		cmd.PrintErrln(styles.Muted.Render(name + " does not exist yet; waiting"))
	default:
		return fmt.Errorf("read failed: %w", err)
	}

	if err := textService.Watch(cmd.Context(), name, printText); err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}
	return nil
}
