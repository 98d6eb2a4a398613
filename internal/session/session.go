// Package session tracks the bridge's working context: whether a project
// root has been established, the loaded policy text, and the auxiliary tools
// discovered from the user's Gemini settings.
package session

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/gembridge/gembridge/internal/gemini"
)

// InitPolicy selects how tool calls behave before explicit initialization.
type InitPolicy string

const (
	// PolicyAuto silently initializes an uninitialized session with the
	// process's current directory and proceeds. Default: the host agent
	// frequently forgets to call the initialize tool, and availability is
	// preferred over strictness.
	PolicyAuto InitPolicy = "auto"

	// PolicyStrict fails uninitialized calls with an instruction to call
	// the initialize tool first.
	PolicyStrict InitPolicy = "strict"
)

// ErrNotInitialized is returned under PolicyStrict for tool calls made
// before Initialize.
var ErrNotInitialized = fmt.Errorf("session not initialized: call the initialize_gemini_bridge tool with the project root first")

// PolicyFileName is the fixed-name project policy file read from the root.
const PolicyFileName = "AGENTS.md"

// discoverTools allows tests to stub out settings discovery.
var discoverTools = gemini.DiscoverTools

// Status summarizes the outcome of initialization for the caller.
type Status struct {
	Root         string
	PolicyLoaded bool
	ToolCount    int
}

// Snapshot is a consistent read-only copy of the session fields.
type Snapshot struct {
	Initialized bool
	Root        string
	Policy      string
	AuxTools    []string
}

// Session is the per-server working context. All methods are safe for
// concurrent use; near-simultaneous initialize calls from the host must not
// race on the read-modify-write sequence.
type Session struct {
	mu          sync.Mutex
	policy      InitPolicy
	initialized bool
	root        string
	policyText  string
	auxTools    []string
}

// New creates an uninitialized session governed by the given policy.
func New(policy InitPolicy) *Session {
	if policy == "" {
		policy = PolicyAuto
	}
	return &Session{policy: policy}
}

// Initialize resolves rootPath and establishes the working context.
// A missing root degrades to the process's current directory with a warning
// rather than failing the session. The policy file is optional; a read
// failure counts as absent. Initialized is set last, unconditionally.
// Re-invocation with the same valid path yields an identical state.
func (s *Session) Initialize(rootPath string) (Status, error) {
	root, err := filepath.Abs(rootPath)
	if err != nil {
		root = rootPath
	}
	if info, statErr := os.Stat(root); statErr != nil || !info.IsDir() {
		slog.Warn("project root not found, using current directory", "requested", root)
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			root = cwd
		}
	}

	policyText := loadPolicyFile(root)
	auxTools, status := discoverTools()
	if status != gemini.DiscoveryLoaded {
		slog.Debug("gemini settings discovery degraded", "status", status)
	}

	s.mu.Lock()
	s.root = root
	s.policyText = policyText
	s.auxTools = auxTools
	s.initialized = true
	s.mu.Unlock()

	return Status{
		Root:         root,
		PolicyLoaded: policyText != "",
		ToolCount:    len(auxTools),
	}, nil
}

// Ensure makes the session usable for a tool call. Under PolicyAuto an
// uninitialized session is initialized with the current directory; under
// PolicyStrict ErrNotInitialized is returned instead.
func (s *Session) Ensure() error {
	s.mu.Lock()
	initialized := s.initialized
	policy := s.policy
	s.mu.Unlock()

	if initialized {
		return nil
	}
	if policy == PolicyStrict {
		return ErrNotInitialized
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	slog.Warn("session not explicitly initialized, auto-initializing", "root", cwd)
	_, err = s.Initialize(cwd)
	return err
}

// Snapshot returns a copy of the current session fields for lock-free reads.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	tools := make([]string, len(s.auxTools))
	copy(tools, s.auxTools)
	return Snapshot{
		Initialized: s.initialized,
		Root:        s.root,
		Policy:      s.policyText,
		AuxTools:    tools,
	}
}

func loadPolicyFile(root string) string {
	data, err := os.ReadFile(filepath.Join(root, PolicyFileName))
	if err != nil {
		return ""
	}
	return string(data)
}
