package project

import (
	"fmt"
	"io"
	"os"
)

// Reporter receives step-level progress during generation. Generate
// calls it from a single goroutine, so implementations need no locking.
type Reporter interface {
	// StepStart announces a generation step beginning.
	StepStart(title string)
	// StepComplete announces a generation step finishing.
	StepComplete(message string)
	// StepError announces a step failure before Generate returns it.
	StepError(err error)
}

// NopReporter discards all progress events.
type NopReporter struct{}

func (NopReporter) StepStart(string)    {}
func (NopReporter) StepComplete(string) {}
func (NopReporter) StepError(error)     {}

// ConsoleReporter writes plain progress lines, one per event.
type ConsoleReporter struct {
	w io.Writer
}

// NewConsoleReporter creates a ConsoleReporter. A nil writer defaults
// to stdout.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleReporter{w: w}
}

func (r *ConsoleReporter) StepStart(title string) {
	_, _ = fmt.Fprintf(r.w, "%s...\n", title)
}

func (r *ConsoleReporter) StepComplete(message string) {
	_, _ = fmt.Fprintf(r.w, "%s\n", message)
}

func (r *ConsoleReporter) StepError(err error) {
	_, _ = fmt.Fprintf(r.w, "error: %v\n", err)
}
