package cmd

import (
	"fmt"
	"strings"

	"github.com/PolarWolf314/flatrunner/internal/audit"
	kerrors "github.com/PolarWolf314/flatrunner/internal/errors"
	"github.com/PolarWolf314/flatrunner/internal/ui"
	"github.com/spf13/cobra"
)

var appsEnvMerged bool

func init() {
	appsEnvCmd.Flags().BoolVarP(&appsEnvMerged, "merged", "m", false, "include variables inherited from the default profile")
	AppsCmd.AddCommand(appsEnvCmd)
	AppsCmd.AddCommand(appsSetEnvCmd)
	AppsCmd.AddCommand(appsRmEnvCmd)
}

// envAssignment is a parsed KEY=VALUE argument.
type envAssignment struct {
	Key   string
	Value string
}

// parseEnvAssignments parses KEY=VALUE arguments. Values may contain '='.
func parseEnvAssignments(args []string) ([]envAssignment, error) {
	assignments := make([]envAssignment, 0, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("%q: %w", arg, kerrors.ErrInvalidEnvAssignment)
		}
		assignments = append(assignments, envAssignment{Key: key, Value: value})
	}
	return assignments, nil
}

var appsEnvCmd = &cobra.Command{
	Use:   "env <app-id>",
	Short: "Print the environment overrides of an application as JSON",
	Long: `Prints the environment overrides of an application as a JSON object.

With --merged, variables of the default profile that the application does
not override are included.

Examples:
  # Print the variables set for Maps
  flatrunner apps env org.gnome.Maps

  # Print the variables Maps is launched with
  flatrunner apps env org.gnome.Maps --merged`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		AppsLogger.Infof("Starting apps env command")

		id := args[0]
		if err := requireAppID(id); err != nil {
			return AppsLogger.ErrorfAndReturn("%v", err)
		}

		session, err := openProfileStore()
		if err != nil {
			return AppsLogger.ErrorfAndReturn("%v", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), session.Store.EnvJSON(id, appsEnvMerged))
		return nil
	},
}

var appsSetEnvCmd = &cobra.Command{
	Use:   "set-env <app-id> KEY=VALUE...",
	Short: "Set environment variables for an application",
	Long: `Sets one or more environment variables an application is launched with.

Existing variables with the same name are overwritten. Setting a variable on
the default profile applies it to every application that does not set it.

Examples:
  # Force Maps onto Wayland
  flatrunner apps set-env org.gnome.Maps GDK_BACKEND=wayland

  # Set several variables at once
  flatrunner apps set-env default QT_SCALE_FACTOR=1 GTK_THEME=Adwaita:dark`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		AppsLogger.Infof("Starting apps set-env command")

		id := args[0]
		if err := requireAppID(id); err != nil {
			return AppsLogger.ErrorfAndReturn("%v", err)
		}
		assignments, err := parseEnvAssignments(args[1:])
		if err != nil {
			return AppsLogger.ErrorfAndReturn("%v", err)
		}

		session, err := openProfileStore()
		if err != nil {
			return AppsLogger.ErrorfAndReturn("%v", err)
		}

		spinner, cleanup := startSpinner(cmd, "Updating environment...")
		defer cleanup()

		for _, a := range assignments {
			AppsLogger.Debugf("Setting %s=%s for %s", a.Key, a.Value, id)
			if err := session.Store.SetEnvVar(id, a.Key, a.Value); err != nil {
				spinner.FinalMSG = ui.Cross() + " Failed to set " + a.Key + " for " + ui.AppID.Sprint(id)
				return AppsLogger.ErrorfAndReturn("Failed to set environment variable: %v", err)
			}

			entry := audit.NewEntry("set-env", id)
			entry.Key = a.Key
			entry.Value = a.Value
			session.journal(entry)
		}

		spinner.FinalMSG = ui.Check() + fmt.Sprintf(" Set %d environment variable(s) for ", len(assignments)) + ui.AppID.Sprint(id)
		return nil
	},
}

var appsRmEnvCmd = &cobra.Command{
	Use:   "rm-env <app-id> KEY...",
	Short: "Remove environment variables from an application",
	Long: `Removes one or more environment variables from an application.

Variables the application does not set are ignored. Removing a variable
does not hide a value inherited from the default profile.

Examples:
  # Remove an override
  flatrunner apps rm-env org.gnome.Maps GDK_BACKEND`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		AppsLogger.Infof("Starting apps rm-env command")

		id := args[0]
		if err := requireAppID(id); err != nil {
			return AppsLogger.ErrorfAndReturn("%v", err)
		}

		session, err := openProfileStore()
		if err != nil {
			return AppsLogger.ErrorfAndReturn("%v", err)
		}

		spinner, cleanup := startSpinner(cmd, "Updating environment...")
		defer cleanup()

		removed := 0
		for _, key := range args[1:] {
			if _, ok := session.Store.Env(id, false)[key]; !ok {
				AppsLogger.Warnf("%s does not set %s", id, key)
				continue
			}
			if err := session.Store.RemoveEnvVar(id, key); err != nil {
				spinner.FinalMSG = ui.Cross() + " Failed to remove " + key + " from " + ui.AppID.Sprint(id)
				return AppsLogger.ErrorfAndReturn("Failed to remove environment variable: %v", err)
			}
			removed++

			entry := audit.NewEntry("rm-env", id)
			entry.Key = key
			session.journal(entry)
		}

		spinner.FinalMSG = ui.Check() + fmt.Sprintf(" Removed %d environment variable(s) from ", removed) + ui.AppID.Sprint(id)
		return nil
	},
}
