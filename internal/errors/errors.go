package errors

import "errors"

// Store errors indicate the backing settings file cannot be used.
var (
	// ErrSettingsFileInvalid indicates the settings file exists but could not be decoded.
	ErrSettingsFileInvalid = errors.New("settings file is invalid")

	// ErrSettingsFileUnwritable indicates the settings file could not be saved.
	ErrSettingsFileUnwritable = errors.New("settings file could not be written")

	// ErrInvalidKey indicates a settings key is not of the form "<group>/<name>".
	ErrInvalidKey = errors.New("invalid settings key")
)

// Application errors indicate problems with application identifiers.
var (
	// ErrEmptyAppID indicates an empty application id was supplied.
	ErrEmptyAppID = errors.New("application id is empty")
)

// Input errors indicate missing or malformed command input.
var (
	// ErrNoInput indicates no input was provided on stdin or via --file.
	ErrNoInput = errors.New("no input provided")

	// ErrInvalidEnvAssignment indicates an environment assignment is not KEY=VALUE.
	ErrInvalidEnvAssignment = errors.New("environment assignment must be KEY=VALUE")
)
