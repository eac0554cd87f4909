package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/timelocal-cli/internal/watcher"
)

var watchOut string

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Localise HTML files in a directory as they change",
	Long: `Watches a directory and re-runs the localisation pass whenever an
HTML file is created or modified. Localised copies are written to the
output directory; existing files get an initial pass on startup.

Because the pass only reads attributes and never mutates them, repeated
runs over the same file are safe.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOut, "out", "o", "", "output directory (default <dir>-localized)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	w, err := watcher.New(localizerService, watcher.Config{
		Dir:      args[0],
		OutDir:   watchOut,
		Settings: appSettings,
	})
	if err != nil {
		return err
	}

	cmd.Printf("Watching %s -> %s (ctrl-c to stop)\n", args[0], w.OutDir())
	return w.Run(cmd.Context())
}
