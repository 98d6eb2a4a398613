// Package errors provides structured CLI errors with categories and
// remediation steps, so failures surface as actionable text instead of raw
// stack traces.
package errors

// ErrorCategory classifies a CLI error for display purposes.
type ErrorCategory int

const (
	// Argument indicates invalid or missing command arguments.
	Argument ErrorCategory = iota
	// Configuration indicates a problem loading or validating configuration.
	Configuration
	// Prerequisite indicates a missing external dependency (binary, file).
	Prerequisite
	// Runtime indicates a failure during command execution.
	Runtime
)

// String returns the display heading for the category.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Prerequisite:
		return "Prerequisite Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is a user-facing error with remediation guidance.
type CLIError struct {
	Category    ErrorCategory
	Message     string
	Usage       string
	Remediation []string
	Err         error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewArgumentError creates an Argument-category error with remediation steps.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Argument,
		Message:     message,
		Remediation: remediation,
	}
}

// NewArgumentErrorWithUsage creates an Argument-category error that also
// carries a usage line.
func NewArgumentErrorWithUsage(message, usage string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Argument,
		Message:     message,
		Usage:       usage,
		Remediation: remediation,
	}
}
