package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"platen/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "platen",
	Short: "Layout engine for source formatters",
	Long:  `Platen renders layout token streams into width-aware formatted text`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// terminalWidth returns the column count of f, or 0 when f is not a
// terminal.
func terminalWidth(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}
