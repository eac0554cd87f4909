// Package cli implements the command-line driving adapter for timelocal.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/custodia-labs/timelocal-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/timelocal-cli/internal/core/domain"
	"github.com/custodia-labs/timelocal-cli/internal/core/ports/driving"
	"github.com/custodia-labs/timelocal-cli/internal/core/services"
	"github.com/custodia-labs/timelocal-cli/internal/formatters/moment"
	"github.com/custodia-labs/timelocal-cli/internal/logger"
	"github.com/custodia-labs/timelocal-cli/internal/rewriters/htmltree"
)

var (
	// version is the build version, injected via Execute.
	version = "dev"

	// Persistent flags.
	verboseFlag bool
	configDir   string

	// localizerService and appSettings are wired by initServices and
	// shared by all commands.
	localizerService driving.Localizer
	appSettings      domain.Settings
)

var rootCmd = &cobra.Command{
	Use:   "timelocal",
	Short: "Localise timestamp elements in HTML documents",
	Long: `timelocal rewrites the visible text of timestamp elements in HTML.

Elements marked with <time class="jstime" datetime="..."> have their text
replaced by a human-readable rendering of the datetime attribute. An
optional data-format attribute selects a display pattern (e.g.
"YYYY-MM-DD HH:mm"); without it the environment-default rendering is used.
Attributes are never modified, so the pass can be re-run safely.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose diagnostics on stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.timelocal)")
}

// Execute runs the root command with the given build version.
func Execute(v string) error {
	if v != "" {
		version = v
	}
	return rootCmd.Execute()
}

// initServices loads configuration and wires the localizer service.
func initServices() error {
	logger.SetVerbose(verboseFlag)

	store, err := configfile.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	settings := store.Settings()
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	loc, err := settings.Location()
	if err != nil {
		return fmt.Errorf("resolving timezone: %w", err)
	}

	localizerService = services.
		NewLocalizer(moment.New(loc), htmltree.New()).
		WithDefaultPattern(settings.DefaultFormat)
	appSettings = settings

	logger.Debug("configured timezone=%s default_format=%q", settings.Timezone, settings.DefaultFormat)
	return nil
}
