package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/PolarWolf314/flatrunner/internal/audit"
	"github.com/PolarWolf314/flatrunner/internal/configs"
	kerrors "github.com/PolarWolf314/flatrunner/internal/errors"
	"github.com/PolarWolf314/flatrunner/internal/kvstore"
	"github.com/PolarWolf314/flatrunner/internal/profiles"
	"github.com/PolarWolf314/flatrunner/internal/ui"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

// profileSession bundles an opened profile store with the settings it was opened from.
type profileSession struct {
	Store    *profiles.Store
	Settings *configs.RunnerSettings
}

// journal appends entry to the audit journal of the session.
func (p *profileSession) journal(entry audit.Entry) {
	AppsLogger.Debugf("Journaling %s for %s", entry.Operation, entry.App)
	audit.Log(p.Settings.AuditLogPath, entry)
}

// openProfileStore resolves runner settings, applies flag overrides and opens the settings file.
func openProfileStore() (*profileSession, error) {
	settings, err := configs.LoadRunnerSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve runner settings: %w", err)
	}

	if appsSettingsPath != "" {
		settings.SettingsPath = appsSettingsPath
	}
	if appsDeviceDPI < 0 {
		return nil, fmt.Errorf("invalid --device-dpi %d: must be positive", appsDeviceDPI)
	}
	if appsDeviceDPI > 0 {
		settings.DeviceDPI = appsDeviceDPI
	}

	AppsLogger.Debugf("Opening settings file %s (device DPI %d)", settings.SettingsPath, settings.DeviceDPI)
	kv, err := kvstore.OpenFile(settings.SettingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings: %w", err)
	}

	store, err := profiles.New(kv,
		profiles.WithDisplay(profiles.StaticDisplay(settings.DeviceDPI)),
		profiles.WithLogger(AppsLogger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize settings: %w", err)
	}

	return &profileSession{Store: store, Settings: settings}, nil
}

// requireAppID rejects blank application ids.
func requireAppID(id string) error {
	if strings.TrimSpace(id) == "" {
		return kerrors.ErrEmptyAppID
	}
	return nil
}

// startSpinner creates and starts a spinner on cmd's error stream with the given message when not
// in verbose or debug mode. Returns the spinner and a function that should be deferred to clean up.
//
// spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// writes the final message to cmd's output with ui.EnsureNewline applied.
func startSpinner(cmd *cobra.Command, message string) (*spinner.Spinner, func()) {
	quiet := !appsVerbose && !appsDebug
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(errOut))
	// Only animate on files; the spinner cannot tell whether other writers are terminals.
	f, isFile := errOut.(*os.File)
	if isFile {
		s.WriterFile = f
	}
	animate := quiet && isFile
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		AppsLogger.Warnf("Failed to set spinner color: %v", err)
	}

	if animate {
		s.Start()
	} else if !quiet {
		AppsLogger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if animate {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Fprint(out, finalMsg)
		}
	}

	return s, cleanup
}

