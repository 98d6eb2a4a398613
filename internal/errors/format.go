package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// FormatError renders a CLIError for terminal display, with colored
// headings when the terminal supports them.
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}
	heading := color.New(color.FgRed, color.Bold).Sprint(err.Category.String())
	return format(err, heading)
}

// FormatErrorPlain renders a CLIError without any ANSI escape codes.
func FormatErrorPlain(err *CLIError) string {
	if err == nil {
		return ""
	}
	return format(err, err.Category.String())
}

func format(err *CLIError, heading string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", heading, err.Message)

	if err.Usage != "" {
		fmt.Fprintf(&b, "\nUsage: %s\n", err.Usage)
	}

	if len(err.Remediation) > 0 {
		b.WriteString("\nTo fix this:\n")
		for _, step := range err.Remediation {
			fmt.Fprintf(&b, "  - %s\n", step)
		}
	}
	return b.String()
}

// FormatSimpleError wraps a plain error in the given category and formats it.
func FormatSimpleError(err error, category ErrorCategory) string {
	if err == nil {
		return ""
	}
	return FormatErrorPlain(&CLIError{Category: category, Message: err.Error()})
}

// PrintError writes the formatted error to stderr.
func PrintError(err *CLIError) {
	FprintError(os.Stderr, err)
}

// FprintError writes the formatted error to w.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatError(err))
}
