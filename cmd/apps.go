package cmd

import (
	logger "github.com/PolarWolf314/flatrunner/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	appsVerbose      bool
	appsDebug        bool
	appsSettingsPath string
	appsDeviceDPI    int
	AppsLogger       logger.Logger

	// AppsCmd is the top-level apps command.
	AppsCmd = &cobra.Command{
		Use:   "apps",
		Short: "Manage per-application launch settings",
		Long: `Provides commands for inspecting and editing the launch settings of
sandboxed applications.

Every application has a profile with a display name, an icon, a DPI
override, a scaling factor and environment overrides. The profile named
"default" supplies the values an application does not set itself.

Use these commands to:
  - Replace the list of installed applications (apps update)
  - List applications and show their profiles
  - Override DPI, scaling and environment variables per application

Examples:
  # Register the installed applications
  flatrunner apps update --file apps.json

  # Show the effective settings of an application
  flatrunner apps show org.gnome.Maps --merged

  # Double the UI scale of every application that does not override it
  flatrunner apps set-scaling default 2

  # Force an application onto Wayland
  flatrunner apps set-env org.gnome.Maps GDK_BACKEND=wayland`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			AppsLogger = logger.Logger{
				Verbose: appsVerbose,
				Debug:   appsDebug,
				Out:     cmd.ErrOrStderr(),
				Err:     cmd.ErrOrStderr(),
			}
			AppsLogger.Debugf("Initializing apps command with verbose=%t, debug=%t", appsVerbose, appsDebug)
		},
	}
)

func init() {
	AppsCmd.PersistentFlags().BoolVarP(&appsVerbose, "verbose", "v", false, "enable verbose output")
	AppsCmd.PersistentFlags().BoolVarP(&appsDebug, "debug", "d", false, "enable debug output")
	AppsCmd.PersistentFlags().StringVar(&appsSettingsPath, "settings", "", "settings file (defaults to $FLATRUNNER_SETTINGS or the user config directory)")
	AppsCmd.PersistentFlags().IntVar(&appsDeviceDPI, "device-dpi", 0, "physical DPI of the primary display (defaults to $FLATRUNNER_DEVICE_DPI or 96)")
}

// GetAppsCmd returns the AppsCmd for testing.
func GetAppsCmd() *cobra.Command {
	return AppsCmd
}

// ResetAppsState resets all apps command global variables to their default values for testing.
func ResetAppsState() {
	appsVerbose = false
	appsDebug = false
	appsSettingsPath = ""
	appsDeviceDPI = 0
	AppsLogger = logger.Logger{}
	resetAppsCobraFlagState(AppsCmd)
}

// resetAppsCobraFlagState restores every flag of cmd and its subcommands to its default.
func resetAppsCobraFlagState(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		_ = flag.Value.Set(flag.DefValue)
		flag.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetAppsCobraFlagState(sub)
	}
}
