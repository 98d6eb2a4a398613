// Package health verifies that the bridge's external collaborators (the
// Gemini CLI, user settings, configuration) are usable on this host.
package health

import (
	"fmt"
	"os/exec"
	"slices"
	"strings"

	"github.com/gembridge/gembridge/internal/config"
	"github.com/gembridge/gembridge/internal/gemini"
)

// CheckResult represents the result of a single health check.
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// Report contains all health check results.
type Report struct {
	Checks []CheckResult
	Passed bool
}

// Run executes all health checks and returns a report.
func Run(cfg *config.Configuration) *Report {
	report := &Report{Passed: true}

	for _, check := range []CheckResult{
		CheckGeminiCLI(cfg.GeminiCmd),
		CheckSettings(),
		CheckModels(cfg),
	} {
		report.Checks = append(report.Checks, check)
		if !check.Passed {
			report.Passed = false
		}
	}
	return report
}

// CheckGeminiCLI verifies the Gemini binary is present and reports its version.
func CheckGeminiCLI(name string) CheckResult {
	bin, err := gemini.LookupBinary(name)
	if err != nil {
		return CheckResult{
			Name:    "Gemini CLI",
			Passed:  false,
			Message: err.Error(),
		}
	}

	version := "unknown version"
	if out, err := exec.Command(bin, "--version").Output(); err == nil {
		version = strings.TrimSpace(string(out))
	}
	return CheckResult{
		Name:    "Gemini CLI",
		Passed:  true,
		Message: fmt.Sprintf("%s (%s)", bin, version),
	}
}

// CheckSettings reports the state of the user's Gemini settings file.
func CheckSettings() CheckResult {
	tools, status := gemini.DiscoverTools()
	switch status {
	case gemini.DiscoveryLoaded:
		return CheckResult{
			Name:    "Gemini settings",
			Passed:  true,
			Message: fmt.Sprintf("%d auxiliary tools registered", len(tools)),
		}
	case gemini.DiscoveryMalformed:
		// Degraded but non-fatal: the bridge ignores malformed settings.
		return CheckResult{
			Name:    "Gemini settings",
			Passed:  true,
			Message: "settings file is malformed, auxiliary tools will not be reported",
		}
	default:
		return CheckResult{
			Name:    "Gemini settings",
			Passed:  true,
			Message: "no settings file found, auxiliary tools will not be reported",
		}
	}
}

// CheckModels verifies the configured default and flash models are in the
// allow-list.
func CheckModels(cfg *config.Configuration) CheckResult {
	catalog := gemini.NewCatalog(cfg.AllowedModels, cfg.DefaultModel, cfg.FlashModel)
	var missing []string
	for _, m := range []string{catalog.Default, catalog.Flash} {
		if !slices.Contains(catalog.Allowed, m) {
			missing = append(missing, m)
		}
	}
	if len(missing) > 0 {
		return CheckResult{
			Name:    "Model allow-list",
			Passed:  false,
			Message: fmt.Sprintf("configured models not in allow-list: %s", strings.Join(missing, ", ")),
		}
	}
	return CheckResult{
		Name:    "Model allow-list",
		Passed:  true,
		Message: fmt.Sprintf("default %s, flash %s", catalog.Default, catalog.Flash),
	}
}

// FormatReport formats the health report for console output.
func FormatReport(report *Report) string {
	var b strings.Builder
	for _, check := range report.Checks {
		mark := "✓"
		if !check.Passed {
			mark = "✗"
		}
		fmt.Fprintf(&b, "%s %s: %s\n", mark, check.Name, check.Message)
	}
	return b.String()
}
