package gemini

import (
	"os"
	"path/filepath"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DiscoveryStatus reports how auxiliary tool discovery went. Discovery is
// best-effort: a missing or malformed settings file degrades to an empty
// tool list instead of failing the caller, but the degraded path stays
// observable for callers and tests.
type DiscoveryStatus string

const (
	// DiscoveryLoaded means a settings file was found and parsed.
	DiscoveryLoaded DiscoveryStatus = "loaded"
	// DiscoveryMissing means no settings file exists.
	DiscoveryMissing DiscoveryStatus = "missing"
	// DiscoveryMalformed means a settings file exists but could not be parsed.
	DiscoveryMalformed DiscoveryStatus = "malformed"
)

// settingsDirOverride allows tests to redirect the ~/.gemini lookup.
// When empty (default), the user's home directory is used.
var settingsDirOverride string

// settingsPaths returns candidate Gemini settings files in priority order.
func settingsPaths() []string {
	dir := settingsDirOverride
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		dir = filepath.Join(home, ".gemini")
	}
	return []string{
		filepath.Join(dir, "config.json"),
		filepath.Join(dir, "settings.json"),
	}
}

// DiscoverTools reads the user's Gemini CLI settings and returns the names
// of MCP servers already registered there, sorted alphabetically. The first
// settings file that exists wins. Never returns an error: the result is
// informational only.
func DiscoverTools() ([]string, DiscoveryStatus) {
	for _, path := range settingsPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		k := koanf.New(".")
		if err := k.Load(file.Provider(path), kjson.Parser()); err != nil {
			return nil, DiscoveryMalformed
		}
		return k.MapKeys("mcpServers"), DiscoveryLoaded
	}
	return nil, DiscoveryMissing
}
