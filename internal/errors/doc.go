// Package errors provides typed error values for flatrunner.
//
// Sentinel errors let callers react to specific conditions with errors.Is()
// instead of matching on message text.
//
// # Error Categories
//
//   - Store errors: the settings file cannot be read or written
//     (ErrSettingsFileInvalid, ErrSettingsFileUnwritable, ErrInvalidKey)
//   - Application errors: bad application identifiers (ErrEmptyAppID)
//   - Input errors: missing or malformed command input
//     (ErrNoInput, ErrInvalidEnvAssignment)
//
// # Usage
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("opening %s: %w", path, errors.ErrSettingsFileInvalid)
//
// Handle them in the CLI layer:
//
//	if errors.Is(err, kerrors.ErrSettingsFileInvalid) {
//	    // Point the user at the broken file
//	}
package errors
