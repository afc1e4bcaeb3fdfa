package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/PolarWolf314/flatrunner/internal/profiles"
	"github.com/PolarWolf314/flatrunner/internal/ui"
	"github.com/spf13/cobra"
)

var (
	appsShowMerged bool
	appsShowJSON   bool
)

func init() {
	appsShowCmd.Flags().BoolVarP(&appsShowMerged, "merged", "m", false, "resolve unset values from the default profile")
	appsShowCmd.Flags().BoolVar(&appsShowJSON, "json", false, "output in JSON format")
	AppsCmd.AddCommand(appsShowCmd)
}

var appsShowCmd = &cobra.Command{
	Use:   "show <app-id>",
	Short: "Display the settings of an application",
	Long: `Displays the name, icon, DPI, scaling and environment of an application.

Without --merged only the values stored for the application are shown and
unset DPI or scaling is reported as 0. With --merged the effective values are
shown, falling back to the default profile and the device DPI.

Examples:
  # Show stored settings
  flatrunner apps show org.gnome.Maps

  # Show effective settings
  flatrunner apps show org.gnome.Maps --merged

  # Show the default profile as JSON
  flatrunner apps show default --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		AppsLogger.Infof("Starting apps show command")
		AppsLogger.Debugf("Flags: merged=%t, json=%t", appsShowMerged, appsShowJSON)

		id := args[0]
		if err := requireAppID(id); err != nil {
			return AppsLogger.ErrorfAndReturn("%v", err)
		}

		session, err := openProfileStore()
		if err != nil {
			return AppsLogger.ErrorfAndReturn("%v", err)
		}

		profile := session.Store.Profile(id, appsShowMerged)
		out := cmd.OutOrStdout()
		if appsShowJSON {
			output, err := json.MarshalIndent(profile, "", "  ")
			if err != nil {
				return AppsLogger.ErrorfAndReturn("Failed to marshal profile to JSON: %v", err)
			}
			fmt.Fprintln(out, string(output))
			return nil
		}

		outputProfileText(out, profile, slices.Contains(session.Store.Apps(), id) || id == profiles.DefaultAppID)
		return nil
	},
}

// outputProfileText prints profile in human-readable format.
func outputProfileText(out io.Writer, profile profiles.ApplicationProfile, registered bool) {
	fmt.Fprintln(out, ui.Hint.Sprint("Application")+" "+ui.AppID.Sprint(profile.ID)+":")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-9s %s\n", "Name:", optionalValue(profile.Name))
	fmt.Fprintf(out, "  %-9s %s\n", "Icon:", optionalValue(profile.Icon))
	fmt.Fprintf(out, "  %-9s %s\n", "DPI:", intValue(profile.DPI))
	fmt.Fprintf(out, "  %-9s %s\n", "Scaling:", intValue(profile.Scaling))

	if len(profile.Env) == 0 {
		fmt.Fprintf(out, "  %-9s %s\n", "Env:", ui.Muted.Sprint("none"))
	} else {
		fmt.Fprintln(out, "  Env:")
		keys := make([]string, 0, len(profile.Env))
		for k := range profile.Env {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(out, "    %s=%s\n", k, ui.Value.Sprint(profile.Env[k]))
		}
	}

	if !registered {
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.Warn()+" "+ui.AppID.Sprint(profile.ID)+" is not in the application list")
	}
}

func optionalValue(s string) string {
	if s == "" {
		return ui.Muted.Sprint("unset")
	}
	return ui.Value.Sprint(s)
}

func intValue(v int) string {
	if v == 0 {
		return ui.Muted.Sprint("inherit")
	}
	return ui.Value.Sprint(strconv.Itoa(v))
}
