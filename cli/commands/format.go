package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/MarketSquare/robotfmt/cli/internal/config"
	"github.com/MarketSquare/robotfmt/cli/internal/ui"
	"github.com/MarketSquare/robotfmt/cli/internal/watch"
	"github.com/MarketSquare/robotfmt/internal/debug"
	"github.com/MarketSquare/robotfmt/rfl"
)

// formatOptions holds the format command's flag values.
type formatOptions struct {
	diff       bool
	check      bool
	watchFiles bool

	widths        string
	alignmentType string
	handleTooLong string
}

// NewFormatCommand creates the format command.
func NewFormatCommand() *cobra.Command {
	opts := &formatOptions{}

	cmd := &cobra.Command{
		Use:     "format [files...]",
		Aliases: []string{"fmt"},
		Short:   "Align robot files into columns",
		Long: "Align the cells of robot files into visual columns and write the " +
			"result back. Without arguments, all .robot and .resource files under " +
			"the current directory are formatted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.diff, "diff", false, "Print a diff instead of rewriting files")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Exit nonzero when files would change, without rewriting them")
	cmd.Flags().BoolVar(&opts.watchFiles, "watch", false, "Keep running and re-format files on save")
	cmd.Flags().StringVar(&opts.widths, "widths", "", "Comma-separated column widths (overrides configuration)")
	cmd.Flags().StringVar(&opts.alignmentType, "alignment-type", "", "Column width policy: auto or fixed")
	cmd.Flags().StringVar(&opts.handleTooLong, "handle-too-long", "", "Overflow policy: overflow, compact_overflow, ignore_line or ignore_rest")

	return cmd
}

func runFormat(opts *formatOptions, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.widths != "" {
		cfg.Widths = opts.widths
	}
	if opts.alignmentType != "" {
		cfg.AlignmentType = opts.alignmentType
	}
	if opts.handleTooLong != "" {
		cfg.HandleTooLong = opts.handleTooLong
	}

	fcfg, skip, err := cfg.ToFormatting()
	if err != nil {
		return err
	}

	files, err := resolveFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		ui.PrintWarning("No robot files found")
		return nil
	}

	// Diff and check mode print their own per-file output; the spinner only
	// accompanies plain write-back runs.
	var spinner *ui.Spinner
	if !opts.diff && !opts.check {
		spinner = ui.StartSpinner(fmt.Sprintf("Formatting %d file(s)", len(files)))
	}

	changed := 0
	for _, file := range files {
		wasChanged, err := formatFile(file, fcfg, skip, opts)
		if err != nil {
			spinner.Fail("Formatting failed")
			return err
		}
		if wasChanged {
			changed++
		}
	}

	if opts.check && changed > 0 {
		return fmt.Errorf("%d file(s) would be reformatted", changed)
	}
	spinner.Success("Formatted %d file(s), %d changed", len(files), changed)

	if opts.watchFiles {
		return watchAndFormat(files, fcfg, skip)
	}
	return nil
}

// formatFile formats one file per the selected mode and reports whether its
// content would change.
func formatFile(path string, fcfg rfl.Config, skip *rfl.SkipConfig, opts *formatOptions) (bool, error) {
	content, err := afero.ReadFile(config.AppFs, path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	source := string(content)

	formatted, diags, err := rfl.Format(path, source, fcfg, skip)
	if err != nil {
		return false, err
	}
	if diags.HasErrors() {
		// Statements with parse problems pass through untouched; the rest of
		// the file is still formatted.
		fmt.Fprint(os.Stderr, diags.ToPrettyString(path, source))
	}

	changed := formatted != source
	switch {
	case opts.diff:
		ui.PrintDiff(path, source, formatted)
	case opts.check:
		if changed {
			ui.PrintWarning("%s would be reformatted", path)
		}
	case changed:
		info, err := config.AppFs.Stat(path)
		mode := os.FileMode(0644)
		if err == nil {
			mode = info.Mode()
		}
		if err := afero.WriteFile(config.AppFs, path, []byte(formatted), mode); err != nil {
			return false, fmt.Errorf("failed to write %s: %w", path, err)
		}
		debug.Debug("Rewrote file", "file", path)
	}
	return changed, nil
}

// watchAndFormat blocks, re-formatting files as they are saved, until
// interrupted.
func watchAndFormat(files []string, fcfg rfl.Config, skip *rfl.SkipConfig) error {
	writeBack := &formatOptions{}
	watcher, err := watch.NewWatcher(files, func(file string) error {
		changed, err := formatFile(file, fcfg, skip, writeBack)
		if err != nil {
			return err
		}
		if changed {
			ui.PrintSuccess("Reformatted %s", file)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if err := watcher.Start(); err != nil {
		return err
	}
	defer watcher.Stop()

	ui.PrintInfo("Watching %d file(s) for changes, press Ctrl+C to stop", len(files))
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	<-interrupt
	return nil
}

// resolveFiles expands the argument list into robot files. Directory
// arguments and the no-argument case are walked recursively.
func resolveFiles(args []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}

	var files []string
	for _, arg := range args {
		info, err := config.AppFs.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		err = afero.Walk(config.AppFs, arg, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				if strings.HasPrefix(info.Name(), ".") && path != arg {
					return filepath.SkipDir
				}
				return nil
			}
			if isRobotFile(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// isRobotFile reports whether the path has a robot file extension.
func isRobotFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".robot", ".resource":
		return true
	default:
		return false
	}
}
