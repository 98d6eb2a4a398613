package errors

import "fmt"

// GeminiCliNotFound reports a missing gemini binary with install guidance.
func GeminiCliNotFound(cmd string) *CLIError {
	return &CLIError{
		Category: Prerequisite,
		Message:  fmt.Sprintf("Gemini CLI %q not found", cmd),
		Remediation: []string{
			"install the Gemini CLI: npm install -g @google/gemini-cli",
			"or set gemini_cmd in the config to the full binary path",
		},
	}
}

// ConfigParseError reports a config file that failed to load or validate.
func ConfigParseError(path string, err error) *CLIError {
	return &CLIError{
		Category: Configuration,
		Message:  fmt.Sprintf("failed to load config %q: %v", path, err),
		Err:      err,
		Remediation: []string{
			"check that the file is valid JSON",
			"run 'gembridge doctor' to verify the environment",
		},
	}
}

// InvalidTransport reports an unsupported serve transport.
func InvalidTransport(transport string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("unknown transport %q", transport),
		"gembridge serve --transport stdio|sse",
		"use 'stdio' for editor integration or 'sse' for remote agents",
	)
}
