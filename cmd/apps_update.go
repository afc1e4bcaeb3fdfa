package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/PolarWolf314/flatrunner/internal/audit"
	kerrors "github.com/PolarWolf314/flatrunner/internal/errors"
	"github.com/PolarWolf314/flatrunner/internal/ui"
	"github.com/PolarWolf314/flatrunner/internal/utils"
	"github.com/spf13/cobra"
)

var appsUpdateFile string

func init() {
	appsUpdateCmd.Flags().StringVarP(&appsUpdateFile, "file", "f", "", "read the application list from a file instead of stdin")
	AppsCmd.AddCommand(appsUpdateCmd)
}

var appsUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Replace the list of registered applications",
	Long: `Replaces the list of registered applications with the contents of a JSON array.

Each element is an object with the application id in "flatpak" (or "id"),
and optionally "name" and "icon". Elements without an id are skipped.
Settings of applications that drop out of the list are kept.

Examples:
  # Read the list from a file
  flatrunner apps update --file apps.json

  # Read the list from stdin
  cat apps.json | flatrunner apps update`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		AppsLogger.Infof("Starting apps update command")

		input, err := readAppListInput()
		if err != nil {
			if errors.Is(err, kerrors.ErrNoInput) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Cross()+" No application list provided.")
				fmt.Fprintln(cmd.OutOrStdout(), ui.Arrow()+" Pipe a JSON array to stdin or pass "+ui.Command.Sprint("--file <path>"))
			}
			return AppsLogger.ErrorfAndReturn("%v", err)
		}
		AppsLogger.Debugf("Read %d bytes of application list input", len(input))

		session, err := openProfileStore()
		if err != nil {
			return AppsLogger.ErrorfAndReturn("%v", err)
		}

		spinner, cleanup := startSpinner(cmd, "Updating application list...")
		defer cleanup()

		if err := session.Store.UpdateApps(string(input)); err != nil {
			spinner.FinalMSG = ui.Cross() + " Failed to update the application list"
			return AppsLogger.ErrorfAndReturn("Failed to update application list: %v", err)
		}

		count := len(session.Store.Apps())
		entry := audit.NewEntry("update", "")
		entry.Count = count
		session.journal(entry)

		spinner.FinalMSG = ui.Check() + " Registered " + ui.Value.Sprint(strconv.Itoa(count)) + " applications"
		return nil
	},
}

// readAppListInput returns the application list from --file or stdin.
func readAppListInput() ([]byte, error) {
	if appsUpdateFile == "" {
		return utils.ReadStdin()
	}

	AppsLogger.Debugf("Reading application list from %s", appsUpdateFile)
	data, err := os.ReadFile(appsUpdateFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", appsUpdateFile, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s is empty: %w", appsUpdateFile, kerrors.ErrNoInput)
	}
	return data, nil
}
