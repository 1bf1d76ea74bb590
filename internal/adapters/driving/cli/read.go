package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textstore/internal/core/domain"
)

var readCmd = &cobra.Command{
	Use:   "read <name>",
	Short: "Print the text stored under a name",
	Long: `Prints the text stored under a name exactly as stored.
No trailing newline is added.`,
	Args: cobra.ExactArgs(1),
	RunE: runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	if textService == nil {
		return errors.New("text service not configured")
	}

	content, err := textService.Read(args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("read failed: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), content)
	return nil
}
