package cli

import (
	"strings"
	"testing"
)

// The root command is package-global, so these tests run sequentially and
// always pass every flag they depend on explicitly.

func TestServeRejectsInvalidPort(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	rootCmd.SetArgs([]string{"serve", "--transport", "sse", "--port", "0"})
	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("expected an error for port 0")
	}
	if !strings.Contains(err.Error(), "invalid port") {
		t.Errorf("error = %q, want it to mention the invalid port", err)
	}
}

func TestServeRejectsUnknownTransport(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	rootCmd.SetArgs([]string{"serve", "--transport", "carrier-pigeon", "--port", "8080"})
	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("expected an error for an unknown transport")
	}
	if !strings.Contains(err.Error(), "unknown transport") {
		t.Errorf("error = %q, want it to mention the unknown transport", err)
	}
}
