package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Display shows a spinner while a step runs, or a plain line when stdout is
// not a terminal.
type Display struct {
	capabilities TerminalCapabilities
	spinner      *spinner.Spinner
}

// NewDisplay creates a display for the given terminal capabilities.
func NewDisplay(caps TerminalCapabilities) *Display {
	return &Display{capabilities: caps}
}

// Start begins indicating activity with the given message.
func (d *Display) Start(message string) {
	if !d.capabilities.IsTTY {
		fmt.Println(message)
		return
	}
	d.spinner = spinner.New(spinner.CharSets[spinnerCharSet(d.capabilities)], 100*time.Millisecond)
	d.spinner.Writer = os.Stderr // keep stdout clean for the report
	d.spinner.Suffix = " " + message
	d.spinner.Start()
}

// Stop ends the activity indication.
func (d *Display) Stop() {
	if d.spinner != nil {
		d.spinner.Stop()
		d.spinner = nil
	}
}
