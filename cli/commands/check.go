package commands

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/MarketSquare/robotfmt/cli/internal/config"
	"github.com/MarketSquare/robotfmt/cli/internal/ui"
	"github.com/MarketSquare/robotfmt/rfl"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [files...]",
		Short: "Parse robot files and report syntax problems",
		Long: "Parse robot files without modifying them and report every syntax " +
			"problem found. Exits nonzero when any file has problems.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args)
		},
	}
}

func runCheck(args []string) error {
	files, err := resolveFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		ui.PrintWarning("No robot files found")
		return nil
	}

	broken := 0
	for _, file := range files {
		content, err := afero.ReadFile(config.AppFs, file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		source := string(content)

		_, diags := rfl.Parse(file, source)
		if diags.HasErrors() {
			broken++
			fmt.Fprint(os.Stderr, diags.ToPrettyString(file, source))
		}
	}

	if broken > 0 {
		return fmt.Errorf("found problems in %d of %d file(s)", broken, len(files))
	}
	ui.PrintSuccess("All %d file(s) parse cleanly", len(files))
	return nil
}
