package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PolarWolf314/flatrunner/internal/profiles"
	"github.com/PolarWolf314/flatrunner/internal/ui"
	"github.com/spf13/cobra"
)

var appsListJSON bool

func init() {
	appsListCmd.Flags().BoolVar(&appsListJSON, "json", false, "output in JSON format")
	AppsCmd.AddCommand(appsListCmd)
}

// appListEntry is one row of apps list --json output.
type appListEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

var appsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered applications",
	Long: `Lists the registered applications in display order.

Applications are ordered by display name, then by id.

Examples:
  # List applications
  flatrunner apps list

  # Output in JSON format
  flatrunner apps list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		AppsLogger.Infof("Starting apps list command")

		session, err := openProfileStore()
		if err != nil {
			return AppsLogger.ErrorfAndReturn("%v", err)
		}

		apps := session.Store.Apps()
		AppsLogger.Debugf("Found %d registered applications", len(apps))

		out := cmd.OutOrStdout()
		if appsListJSON {
			return outputAppListJSON(out, session.Store, apps)
		}
		outputAppListText(out, session.Store, apps)
		return nil
	},
}

func outputAppListJSON(out io.Writer, store *profiles.Store, apps []string) error {
	entries := make([]appListEntry, 0, len(apps))
	for _, id := range apps {
		entries = append(entries, appListEntry{ID: id, Name: store.Name(id), Icon: store.Icon(id)})
	}

	output, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return AppsLogger.ErrorfAndReturn("Failed to marshal application list to JSON: %v", err)
	}
	fmt.Fprintln(out, string(output))
	return nil
}

func outputAppListText(out io.Writer, store *profiles.Store, apps []string) {
	if len(apps) == 0 {
		fmt.Fprintln(out, ui.Warn()+" No applications registered.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.Arrow()+" Run "+ui.Command.Sprint("flatrunner apps update --file <apps.json>")+" to register applications")
		return
	}

	fmt.Fprintln(out, ui.Hint.Sprint("Applications:"))
	for _, id := range apps {
		name := store.Name(id)
		if name == "" {
			fmt.Fprintf(out, "  %s\n", ui.AppID.Sprint(id))
			continue
		}
		fmt.Fprintf(out, "  %s %s\n", ui.AppID.Sprint(id), ui.Value.Sprint(name))
	}
}
