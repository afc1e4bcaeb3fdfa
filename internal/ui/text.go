package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...interface{}) string {
	text := fmt.Sprint(a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	return f.Sprint(fmt.Sprintf(format, a...))
}

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

func noColor() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

var (
	// AppID formats application ids, including "default".
	AppID = Formatter{color.New(color.FgCyan), "'", "'"}

	// Value formats stored setting values.
	Value = Formatter{color.New(color.FgGreen), "", ""}

	// Path formats file paths.
	Path = Formatter{color.New(color.FgYellow), "", ""}

	// Command formats runnable commands.
	Command = Formatter{color.New(color.FgYellow), "`", "`"}

	// Success, Error and Warning color result lines.
	Success = Formatter{color.New(color.FgGreen), "", ""}
	Error   = Formatter{color.New(color.FgRed), "", ""}
	Warning = Formatter{color.New(color.FgYellow), "", ""}

	// Hint formats follow-up suggestions.
	Hint = Formatter{color.New(color.FgCyan), "", ""}

	// Muted formats secondary details such as inherited values.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)

// Result marks.
func Check() string { return Success.Sprint("✓") }
func Cross() string { return Error.Sprint("✗") }
func Warn() string { return Warning.Sprint("⚠") }
func Arrow() string { return Hint.Sprint("→") }
