// Package progress renders activity indicators for long-running checks,
// degrading to plain output on non-interactive terminals.
package progress

import (
	"os"

	"golang.org/x/term"
)

// TerminalCapabilities describes what the attached terminal supports.
type TerminalCapabilities struct {
	IsTTY           bool
	SupportsColor   bool
	SupportsUnicode bool
}

// DetectTerminalCapabilities inspects stdout and the environment.
func DetectTerminalCapabilities() TerminalCapabilities {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	noColor := os.Getenv("NO_COLOR") != ""
	forceASCII := os.Getenv("GEMBRIDGE_ASCII") == "1"

	return TerminalCapabilities{
		IsTTY:           isTTY,
		SupportsColor:   isTTY && !noColor,
		SupportsUnicode: isTTY && !forceASCII,
	}
}

// spinnerCharSet selects the spinner animation for the terminal.
func spinnerCharSet(caps TerminalCapabilities) int {
	if caps.SupportsUnicode {
		return 14 // unicode braille dots
	}
	return 9 // ascii | / - \
}
