// Package audit records the settings changes made through flatrunner.
//
// Every mutating command (update, set-dpi, set-scaling, set-env, rm-env)
// appends one entry to a JSON Lines journal, by default at:
//
//	$XDG_DATA_HOME/flatpak-runner/audit.jsonl
//
// Each entry carries a random id, a UTC timestamp with microseconds, the
// system user, the operation name and the affected application, variable
// and value.
//
// # Usage
//
//	entry := audit.NewEntry("set-dpi", appID)
//	entry.Value = "220"
//	audit.Log(path, entry)
//
// # Failure Handling
//
// Journaling is best-effort: Log never returns an error, so a read-only
// data directory never blocks a settings change.
//
// ReadEntries skips malformed lines left behind by partial writes.
package audit
