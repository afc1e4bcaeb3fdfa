// Package utils provides small operating-system helpers for flatrunner.
//
//   - ReadStdin: reads piped input, refusing to block on an interactive terminal
//   - IsTerminal: reports whether stdin is a terminal
//   - GetUsername: returns the current system username
package utils
