// Package gemini wraps the Gemini CLI as a subprocess: locating the binary,
// discovering user-level settings, resolving model names against an
// allow-list, building deterministic command invocations, and running them
// with captured output.
package gemini
