package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PolarWolf314/flatrunner/internal/audit"
	"github.com/PolarWolf314/flatrunner/internal/configs"
	"github.com/PolarWolf314/flatrunner/internal/ui"
	"github.com/spf13/cobra"
)

var (
	appsHistoryApp  string
	appsHistoryJSON bool
)

func init() {
	appsHistoryCmd.Flags().StringVar(&appsHistoryApp, "app", "", "only show changes to this application")
	appsHistoryCmd.Flags().BoolVar(&appsHistoryJSON, "json", false, "output in JSON format")
	AppsCmd.AddCommand(appsHistoryCmd)
}

var appsHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the journal of settings changes",
	Long: `Shows the settings changes made with flatrunner, oldest first.

The journal is stored in $XDG_DATA_HOME/flatpak-runner/audit.jsonl.

Examples:
  # Show all changes
  flatrunner apps history

  # Show changes to one application
  flatrunner apps history --app org.gnome.Maps`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		AppsLogger.Infof("Starting apps history command")

		settings, err := configs.LoadRunnerSettings()
		if err != nil {
			return AppsLogger.ErrorfAndReturn("Failed to resolve runner settings: %v", err)
		}

		AppsLogger.Debugf("Reading journal from %s", settings.AuditLogPath)
		entries, err := audit.ReadEntries(settings.AuditLogPath)
		if err != nil {
			return AppsLogger.ErrorfAndReturn("Failed to read journal: %v", err)
		}
		if appsHistoryApp != "" {
			entries = audit.FilterByApp(entries, appsHistoryApp)
		}
		AppsLogger.Debugf("Found %d journal entries", len(entries))

		out := cmd.OutOrStdout()
		if appsHistoryJSON {
			if entries == nil {
				entries = []audit.Entry{}
			}
			output, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return AppsLogger.ErrorfAndReturn("Failed to marshal journal to JSON: %v", err)
			}
			fmt.Fprintln(out, string(output))
			return nil
		}

		outputHistoryText(out, entries)
		return nil
	},
}

func outputHistoryText(out io.Writer, entries []audit.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, ui.Muted.Sprint("no recorded changes"))
		return
	}

	for _, e := range entries {
		line := fmt.Sprintf("%s  %-11s", e.Timestamp, e.Operation)
		if e.App != "" {
			line += " " + ui.AppID.Sprint(e.App)
		}
		switch {
		case e.Key != "" && e.Value != "":
			line += " " + e.Key + "=" + ui.Value.Sprint(e.Value)
		case e.Key != "":
			line += " " + e.Key
		case e.Value != "":
			line += " " + ui.Value.Sprint(e.Value)
		case e.Operation == "update":
			line += fmt.Sprintf(" %d applications", e.Count)
		}
		if e.User != "" {
			line += " " + ui.Muted.Sprint(e.User)
		}
		fmt.Fprintln(out, line)
	}
}
