// Package logger provides leveled console logging for flatrunner.
//
// Verbosity is controlled by two command-line flags:
//
//   - --verbose: shows info messages
//   - --debug: shows info and debug messages
//
// Warnings and errors are always written to the error stream.
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Loaded %d applications", count)
//
// The zero Logger is silent apart from warnings and errors, which makes it a
// safe default for library code such as the profiles package.
package logger
