package log

import (
	"io"
	"os"
	"sync"
)

// ConsoleOutput writes formatted entries to a single stream, stderr by
// default.
type ConsoleOutput struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleOutput returns a ConsoleOutput writing to stderr.
func NewConsoleOutput() *ConsoleOutput {
	return &ConsoleOutput{w: os.Stderr}
}

// NewWriterOutput returns a ConsoleOutput writing to w. Useful in tests.
func NewWriterOutput(w io.Writer) *ConsoleOutput {
	return &ConsoleOutput{w: w}
}

// Write appends one formatted entry to the stream.
func (o *ConsoleOutput) Write(_ *Entry, formatted []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, err := o.w.Write(formatted)
	return err
}

// Close is a no-op; the output does not own its stream.
func (o *ConsoleOutput) Close() error { return nil }
