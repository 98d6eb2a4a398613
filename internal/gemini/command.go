package gemini

import "fmt"

// CLI flags understood by the Gemini CLI.
const (
	modelFlag  = "--model"
	systemFlag = "--system"

	// autoApproveFlag tells the CLI to proceed without interactive
	// confirmation. Required for headless bridge operation.
	autoApproveFlag = "--yolo"
)

// Markers bracketing injected project policy text in the system prompt, so
// the downstream model can tell loaded rules apart from ad-hoc instructions.
const (
	rulesHeader = "=== PROJECT RULES ==="
	rulesFooter = "=== END RULES ==="
)

// CommandSpec is a fully resolved CLI invocation: an executable path and a
// discrete argument vector. Prompts, focus strings and file paths are always
// carried as individual argv entries and never joined into a shell string,
// so caller-supplied free text cannot smuggle in extra flags.
type CommandSpec struct {
	Path string
	Args []string
}

// ComposeSystemPrompt assembles the system-instruction text from loaded
// policy text and an optional caller override. The policy block comes first,
// bracketed by rule markers; the override follows after a blank line.
// Returns "" when both inputs are empty.
func ComposeSystemPrompt(policy, override string) string {
	switch {
	case policy != "" && override != "":
		return fmt.Sprintf("%s\n%s\n%s\n\n%s", rulesHeader, policy, rulesFooter, override)
	case policy != "":
		return fmt.Sprintf("%s\n%s\n%s", rulesHeader, policy, rulesFooter)
	default:
		return override
	}
}

// BuildAsk constructs the invocation for a chat request:
//
//	<bin> <prompt> --model <model> --yolo [file...] [--system <text>]
//
// The --system flag is omitted entirely when neither policy nor override
// text is present.
func BuildAsk(bin, prompt, model, policy, override string, files ...string) CommandSpec {
	args := []string{prompt, modelFlag, model, autoApproveFlag}
	args = append(args, files...)
	if sys := ComposeSystemPrompt(policy, override); sys != "" {
		args = append(args, systemFlag, sys)
	}
	return CommandSpec{Path: bin, Args: args}
}

// BuildSummary constructs the invocation for the summarization flow. The
// prompt is synthesized from the focus string, the named files are passed as
// positional arguments for the CLI to read directly, and the model is forced
// to the flash variant: summaries prioritize speed and cost over model
// choice. Policy text, when present, rides along raw as the system prompt.
func BuildSummary(bin, focus, flashModel, policy string, files []string) CommandSpec {
	prompt := fmt.Sprintf("Read files. Extract ONLY info about: '%s'. Be concise.", focus)
	args := []string{prompt, modelFlag, flashModel, autoApproveFlag}
	args = append(args, files...)
	if policy != "" {
		args = append(args, systemFlag, policy)
	}
	return CommandSpec{Path: bin, Args: args}
}
