// Package cmd contains testing utilities shared between command tests.
// This file provides common functions for setting up an isolated settings
// environment and running apps commands with captured output.
package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/PolarWolf314/flatrunner/internal/configs"
)

// testEnv describes the isolated files a test runs against.
type testEnv struct {
	SettingsPath string
	AuditLogPath string
}

// setupTestEnvironment points the runner at settings and journal files inside a temp directory.
func setupTestEnvironment(t *testing.T) testEnv {
	t.Helper()

	tempDir := t.TempDir()
	settingsPath := filepath.Join(tempDir, "config", "settings.toml")
	dataDir := filepath.Join(tempDir, "data")

	t.Setenv(configs.EnvSettingsPath, settingsPath)
	t.Setenv(configs.EnvDeviceDPI, "")
	t.Setenv("XDG_DATA_HOME", dataDir)

	originalNoColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() {
		color.NoColor = originalNoColor
		ResetAppsState()
	})
	ResetAppsState()

	return testEnv{
		SettingsPath: settingsPath,
		AuditLogPath: filepath.Join(dataDir, "flatpak-runner", "audit.jsonl"),
	}
}

// createTestCLI creates a fresh root command wrapping AppsCmd with the given arguments.
func createTestCLI(stdout, stderr *bytes.Buffer, args ...string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "flatrunner",
		Short:         "flatrunner - per-application launch settings for sandboxed desktop applications.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(AppsCmd)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(append([]string{"apps"}, args...))
	return rootCmd
}

// runApps runs an apps subcommand and returns its stdout, stderr and error.
func runApps(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := createTestCLI(&stdout, &stderr, args...).Execute()
	ResetAppsState()
	return stdout.String(), stderr.String(), err
}

// mustRunApps runs an apps subcommand and fails the test on error.
func mustRunApps(t *testing.T, args ...string) string {
	t.Helper()

	stdout, stderr, err := runApps(t, args...)
	if err != nil {
		t.Fatalf("apps %v failed: %v\nstderr: %s", args, err, stderr)
	}
	return stdout
}

// writeAppList writes a JSON application list to a temp file and returns its path.
func writeAppList(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "apps.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write application list: %v", err)
	}
	return path
}
