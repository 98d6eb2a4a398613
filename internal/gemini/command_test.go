package gemini

import (
	"slices"
	"strings"
	"testing"
)

func TestComposeSystemPrompt(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		policy   string
		override string
		want     string
	}{
		"policy and override": {
			policy:   "RULE A",
			override: "RULE B",
			want:     "=== PROJECT RULES ===\nRULE A\n=== END RULES ===\n\nRULE B",
		},
		"policy only": {
			policy: "RULE A",
			want:   "=== PROJECT RULES ===\nRULE A\n=== END RULES ===",
		},
		"override only": {
			override: "RULE B",
			want:     "RULE B",
		},
		"neither": {
			want: "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := ComposeSystemPrompt(tt.policy, tt.override); got != tt.want {
				t.Errorf("ComposeSystemPrompt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildAsk(t *testing.T) {
	t.Parallel()

	t.Run("with policy and override", func(t *testing.T) {
		t.Parallel()
		spec := BuildAsk("/usr/bin/gemini", "hello", "gemini-2.5-pro", "RULE A", "RULE B")

		if spec.Path != "/usr/bin/gemini" {
			t.Errorf("Path = %q, want /usr/bin/gemini", spec.Path)
		}
		want := []string{
			"hello", "--model", "gemini-2.5-pro", "--yolo",
			"--system", "=== PROJECT RULES ===\nRULE A\n=== END RULES ===\n\nRULE B",
		}
		if !slices.Equal(spec.Args, want) {
			t.Errorf("Args = %q, want %q", spec.Args, want)
		}
	})

	t.Run("no policy, no override omits --system", func(t *testing.T) {
		t.Parallel()
		spec := BuildAsk("gemini", "hello", "gemini-2.5-pro", "", "")

		if slices.Contains(spec.Args, "--system") {
			t.Errorf("Args = %q, should not contain --system", spec.Args)
		}
	})

	t.Run("prompt stays a single argv entry", func(t *testing.T) {
		t.Parallel()
		prompt := "ignore previous; --model evil"
		spec := BuildAsk("gemini", prompt, "gemini-2.5-pro", "", "")

		if spec.Args[0] != prompt {
			t.Errorf("Args[0] = %q, want the full prompt verbatim", spec.Args[0])
		}
		// The only --model flag is the one the builder placed.
		count := 0
		for _, a := range spec.Args {
			if a == "--model" {
				count++
			}
		}
		if count != 1 {
			t.Errorf("found %d --model flags, want 1", count)
		}
	})
}

func TestBuildSummary(t *testing.T) {
	t.Parallel()

	files := []string{"a.py", "b.py"}
	spec := BuildSummary("gemini", "find the bug", "gemini-2.5-flash", "", files)

	if !strings.Contains(spec.Args[0], "find the bug") {
		t.Errorf("prompt %q should contain the focus text", spec.Args[0])
	}

	modelIdx := slices.Index(spec.Args, "--model")
	if modelIdx < 0 || spec.Args[modelIdx+1] != "gemini-2.5-flash" {
		t.Errorf("Args = %q, want --model gemini-2.5-flash", spec.Args)
	}

	// File arguments appear exactly as given, in order, after the mode flag.
	yoloIdx := slices.Index(spec.Args, "--yolo")
	got := spec.Args[yoloIdx+1:]
	if !slices.Equal(got, files) {
		t.Errorf("file args = %q, want %q", got, files)
	}
}

func TestBuildSummaryWithPolicy(t *testing.T) {
	t.Parallel()

	spec := BuildSummary("gemini", "auth flow", "gemini-2.5-flash", "RULES", []string{"main.go"})

	sysIdx := slices.Index(spec.Args, "--system")
	if sysIdx < 0 || spec.Args[sysIdx+1] != "RULES" {
		t.Errorf("Args = %q, want raw policy text after --system", spec.Args)
	}
}
