package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var writeCmd = &cobra.Command{
	Use:   "write <name> [content]",
	Short: "Store a text under a name",
	Long: `Stores a text under a name, replacing whatever was there.

The content is taken from the second argument, or read from stdin when
only a name is given:

  textstore write notes.txt "hello world"
  echo "hello world" | textstore write notes.txt`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runWrite,
}

func init() {
	rootCmd.AddCommand(writeCmd)
}

func runWrite(cmd *cobra.Command, args []string) error {
	if textService == nil {
		return errors.New("text service not configured")
	}

	name := args[0]

	var content string
	if len(args) == 2 {
		content = args[1]
	} else {
		in := cmd.InOrStdin()
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return errors.New("no content given: pass it as an argument or pipe it on stdin")
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		content = string(data)
	}

	if err := textService.Write(name, content); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}

	return nil
}
