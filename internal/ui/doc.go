// Package ui provides semantic text formatting for flatrunner's CLI output.
//
// Formatters colorize when the terminal supports it. When NO_COLOR is set or
// color is unavailable they fall back to plain-text decorations:
//
//	ui.AppID.Sprint("org.gnome.Maps")   // 'org.gnome.Maps' without color
//	ui.Command.Sprint("flatrunner apps list")  // `flatrunner apps list`
//	ui.Value.Sprint("GDK_SCALE=2")      // unchanged
//	ui.Muted.Sprint("inherited")        // (inherited)
//
// Status marks (Check, Cross, Warn, Arrow) prefix one-line results.
package ui
