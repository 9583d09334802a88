package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"platen/internal/config"
	"platen/internal/driver"
	"platen/internal/layout"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path> [path...]",
	Short: "Render token stream files into formatted text",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "report pending changes without writing output")
	fmtCmd.Flags().Bool("stdout", false, "print rendered text to stdout instead of writing files")
	fmtCmd.Flags().Int("width", 0, "maximum line width (0 = manifest, or terminal width when attached)")
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	toStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	if toStdout && check {
		return fmt.Errorf("fmt: --stdout cannot be used with --check")
	}

	opts, err := resolveOptions(width)
	if err != nil {
		return err
	}

	results, err := driver.FormatPaths(cmd.Context(), args, driver.FormatOptions{
		Check:   check,
		Stdout:  toStdout,
		Options: opts,
	})
	if err != nil {
		return err
	}

	var hasErrors, hasChanges bool
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}
		if toStdout {
			_, _ = os.Stdout.Write(res.Formatted)
			continue
		}
		if res.Changed {
			hasChanges = true
			if !quiet {
				fmt.Println(color.CyanString(res.Path))
			}
		}
	}

	if hasErrors {
		return fmt.Errorf("fmt: failed to format some streams")
	}
	if check && hasChanges {
		return fmt.Errorf("fmt: formatting changes required")
	}
	return nil
}

// resolveOptions layers the engine options: manifest (or defaults), then the
// --width flag, then the terminal width as a last resort.
func resolveOptions(width int) (layout.Options, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return layout.Options{}, err
	}

	manifest, _, err := config.Find(cwd)
	if errors.Is(err, config.ErrNoManifest) {
		manifest = config.Default()
	} else if err != nil {
		return layout.Options{}, err
	}

	opts := manifest.Options()
	switch {
	case width > 0:
		opts.MaxLineWidth = width
	case width == 0 && err == nil:
		// Manifest width wins over terminal detection.
	default:
		if w := terminalWidth(os.Stdout); w > 0 {
			opts.MaxLineWidth = w
		}
	}
	return opts, nil
}
