// Package configs resolves where flatrunner keeps its files and how it reads
// and writes TOML.
//
// # Runner Settings
//
// LoadRunnerSettings resolves, in priority order (environment first):
//
//   - SettingsPath: $FLATRUNNER_SETTINGS, else
//     <user config dir>/flatpak-runner/settings.toml
//   - AuditLogPath: $XDG_DATA_HOME/flatpak-runner/audit.jsonl, falling back
//     to ~/.local/share when XDG_DATA_HOME is unset
//   - DeviceDPI: $FLATRUNNER_DEVICE_DPI, else DefaultDeviceDPI
//
// Command-line flags are applied on top by the cmd package.
//
// # TOML
//
// SaveTOML writes through a temporary file in the destination directory and
// renames it into place, so a crash never leaves a half-written settings file.
package configs
