package errors

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestFormatError(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		err          *CLIError
		wantContains []string
	}{
		"nil error renders empty": {
			err: nil,
		},
		"category heading and message": {
			err:          &CLIError{Category: Argument, Message: "missing prompt"},
			wantContains: []string{"Argument Error", "missing prompt"},
		},
		"usage line": {
			err:          &CLIError{Category: Argument, Message: "missing arg", Usage: "gembridge serve --transport stdio|sse"},
			wantContains: []string{"Usage:", "gembridge serve --transport stdio|sse"},
		},
		"remediation steps": {
			err:          &CLIError{Category: Prerequisite, Message: "binary missing", Remediation: []string{"install the CLI", "or set gemini_cmd"}},
			wantContains: []string{"To fix this:", "install the CLI", "or set gemini_cmd"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := FormatError(tc.err)
			if tc.err == nil {
				if got != "" {
					t.Errorf("FormatError(nil) = %q, want empty", got)
				}
				return
			}
			for _, want := range tc.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("FormatError() = %q, want it to contain %q", got, want)
				}
			}
		})
	}
}

func TestFormatErrorPlain(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		err          *CLIError
		wantContains []string
	}{
		"nil error renders empty": {
			err: nil,
		},
		"heading and message without colors": {
			err:          &CLIError{Category: Configuration, Message: "config error", Remediation: []string{"fix it"}},
			wantContains: []string{"Configuration Error", "config error", "fix it"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := FormatErrorPlain(tc.err)
			if tc.err == nil {
				if got != "" {
					t.Errorf("FormatErrorPlain(nil) = %q, want empty", got)
				}
				return
			}
			for _, want := range tc.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("FormatErrorPlain() = %q, want it to contain %q", got, want)
				}
			}
			if strings.Contains(got, "\x1b[") {
				t.Errorf("FormatErrorPlain() = %q, want no ANSI escape codes", got)
			}
		})
	}
}

func TestFormatSimpleError(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		err          error
		category     ErrorCategory
		wantContains []string
	}{
		"nil error renders empty": {
			err:      nil,
			category: Runtime,
		},
		"plain error gets the category heading": {
			err:          errors.New("plain failure"),
			category:     Runtime,
			wantContains: []string{"Runtime Error", "plain failure"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := FormatSimpleError(tc.err, tc.category)
			if tc.err == nil {
				if got != "" {
					t.Errorf("FormatSimpleError(nil) = %q, want empty", got)
				}
				return
			}
			for _, want := range tc.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("FormatSimpleError() = %q, want it to contain %q", got, want)
				}
			}
		})
	}
}

func TestFprintError(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		err  *CLIError
		want string
	}{
		"nil error writes nothing":  {err: nil, want: ""},
		"error message is written":  {err: &CLIError{Category: Prerequisite, Message: "missing file"}, want: "missing file"},
		"category heading included": {err: &CLIError{Category: Runtime, Message: "boom"}, want: "Runtime Error"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			FprintError(&buf, tc.err)
			if tc.err == nil {
				if buf.Len() != 0 {
					t.Errorf("FprintError(nil) wrote %q, want nothing", buf.String())
				}
				return
			}
			if !strings.Contains(buf.String(), tc.want) {
				t.Errorf("FprintError() wrote %q, want it to contain %q", buf.String(), tc.want)
			}
		})
	}
}

func TestPrintError(t *testing.T) {
	// Writes to stderr; only verifies the nil and non-nil paths are safe.
	PrintError(&CLIError{Category: Runtime, Message: "test"})
	PrintError(nil)
}

func TestMessages(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		err          *CLIError
		wantCategory ErrorCategory
		wantContains string
	}{
		"gemini cli not found": {
			err:          GeminiCliNotFound("gemini"),
			wantCategory: Prerequisite,
			wantContains: "gemini",
		},
		"config parse error keeps the path": {
			err:          ConfigParseError("/path/config.json", errors.New("bad json")),
			wantCategory: Configuration,
			wantContains: "/path/config.json",
		},
		"invalid transport names the transport": {
			err:          InvalidTransport("carrier-pigeon"),
			wantCategory: Argument,
			wantContains: "carrier-pigeon",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if tc.err.Category != tc.wantCategory {
				t.Errorf("Category = %v, want %v", tc.err.Category, tc.wantCategory)
			}
			if !strings.Contains(tc.err.Message, tc.wantContains) {
				t.Errorf("Message = %q, want it to contain %q", tc.err.Message, tc.wantContains)
			}
			if len(tc.err.Remediation) == 0 && tc.err.Usage == "" {
				t.Error("expected remediation steps or a usage line")
			}
		})
	}
}
