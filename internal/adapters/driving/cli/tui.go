package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/timelocal-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [file]",
	Short: "Preview the timestamps in a file interactively",
	Long: `Launch the interactive terminal preview for one HTML file.

Each timestamp element is listed with its original datetime attribute,
its display pattern, and the text the localisation pass produces.
The file is re-read and re-localised on reload.

Controls:
  ↑/k, ↓/j - Navigate stamps
  r        - Reload the file
  ?        - Toggle help
  q        - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Panic recovery to get stack traces out of the alternate screen
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := tui.NewApp(&tui.Ports{Localizer: localizerService}, args[0])
	if err != nil {
		return err
	}

	program := tea.NewProgram(app.WithContext(cmd.Context()), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
