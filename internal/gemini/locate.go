package gemini

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// ErrExecutableNotFound indicates the Gemini CLI binary could not be located
// in PATH or in any of the conventional install locations.
var ErrExecutableNotFound = errors.New("gemini executable not found")

// fallbackDirs are probed when PATH lookup fails. GUI-launched hosts (e.g.
// editors on macOS) often run with a stripped PATH, so the usual install
// locations are checked directly.
var fallbackDirs = []string{
	"~/.local/bin",
	"/usr/local/bin",
	"/opt/homebrew/bin",
}

// LookupBinary resolves the named CLI binary to an absolute path.
// It tries exec.LookPath first, then the conventional install directories.
func LookupBinary(name string) (string, error) {
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
		return "", fmt.Errorf("%w: %s", ErrExecutableNotFound, name)
	}

	if path, err := exec.LookPath(name); err == nil {
		return path, nil
	}

	for _, dir := range fallbackDirs {
		candidate := filepath.Join(expandHome(dir), name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %q not in PATH (install the Gemini CLI or check your PATH)", ErrExecutableNotFound, name)
}

// expandHome expands a leading ~/ to the user's home directory.
func expandHome(path string) string {
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
