package gemini

import (
	"log/slog"
	"slices"
	"strings"
)

// Model identifiers known to the current Gemini CLI releases.
const (
	DefaultModel = "gemini-2.5-pro"
	FlashModel   = "gemini-2.5-flash"
)

// DefaultAllowedModels is the stock allow-list. Overridable via configuration.
func DefaultAllowedModels() []string {
	return []string{
		"gemini-3-pro-preview",
		"gemini-3-flash-preview",
		"gemini-2.5-pro",
		"gemini-2.5-flash",
	}
}

// Catalog maps requested model identifiers to guaranteed-valid ones.
type Catalog struct {
	// Allowed is the set of identifiers passed through unchanged.
	Allowed []string

	// Default is returned for unknown non-flash requests.
	Default string

	// Flash is returned for unknown requests that look like a flash variant,
	// and is forced for summarization.
	Flash string
}

// NewCatalog builds a catalog from the given allow-list, falling back to the
// stock models for any zero value.
func NewCatalog(allowed []string, defaultModel, flashModel string) Catalog {
	if len(allowed) == 0 {
		allowed = DefaultAllowedModels()
	}
	if defaultModel == "" {
		defaultModel = DefaultModel
	}
	if flashModel == "" {
		flashModel = FlashModel
	}
	return Catalog{Allowed: allowed, Default: defaultModel, Flash: flashModel}
}

// Resolve returns a model identifier that is safe to pass to the CLI.
// Allowed identifiers pass through unchanged. Unknown identifiers fall back:
// anything containing "flash" (case-insensitive) maps to the flash model,
// everything else to the default. Resolve never fails; callers frequently
// supply stale or hallucinated model names and a user-facing request must
// not hard-fail over a cosmetic parameter.
func (c Catalog) Resolve(requested string) string {
	if requested == "" {
		return c.Default
	}
	if slices.Contains(c.Allowed, requested) {
		return requested
	}

	fallback := c.Default
	if strings.Contains(strings.ToLower(requested), "flash") {
		fallback = c.Flash
	}
	slog.Warn("requested model not available, falling back", "requested", requested, "fallback", fallback)
	return fallback
}
