package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// EnvSettingsPath overrides the location of the settings file.
	EnvSettingsPath = "FLATRUNNER_SETTINGS"
	// EnvDeviceDPI overrides the physical DPI reported for the primary display.
	EnvDeviceDPI = "FLATRUNNER_DEVICE_DPI"

	// DefaultDeviceDPI is used when nothing better is known about the display.
	DefaultDeviceDPI = 96

	appDirName       = "flatpak-runner"
	settingsFileName = "settings.toml"
	auditFileName    = "audit.jsonl"
)

type RunnerSettings struct {
	SettingsPath string
	AuditLogPath string
	DeviceDPI    int
}

// LoadRunnerSettings resolves runner settings from the environment and the
// user's standard directories.
func LoadRunnerSettings() (*RunnerSettings, error) {
	settingsPath := os.Getenv(EnvSettingsPath)
	if settingsPath == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("error getting config directory: %w", err)
		}
		settingsPath = filepath.Join(configDir, appDirName, settingsFileName)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("error getting home directory: %w", err)
		}
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	dpi, err := deviceDPIFromEnv()
	if err != nil {
		return nil, err
	}

	return &RunnerSettings{
		SettingsPath: settingsPath,
		AuditLogPath: filepath.Join(dataDir, appDirName, auditFileName),
		DeviceDPI:    dpi,
	}, nil
}

func deviceDPIFromEnv() (int, error) {
	raw := strings.TrimSpace(os.Getenv(EnvDeviceDPI))
	if raw == "" {
		return DefaultDeviceDPI, nil
	}
	dpi, err := strconv.Atoi(raw)
	if err != nil || dpi < 1 {
		return 0, fmt.Errorf("invalid %s value %q: must be a positive integer", EnvDeviceDPI, raw)
	}
	return dpi, nil
}
