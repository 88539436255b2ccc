// Package logger provides verbose logging for the RecipeML CLI.
// With --verbose set, the matching pipeline narrates its stages to
// stderr: corpus loading, vector space fitting, index builds and
// model swaps. Without it the logger is silent.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a pipeline detail, e.g. per-query term counts.
func Debug(format string, args ...any) {
	logf("[DEBUG] ", format, args...)
}

// Info prints a milestone, e.g. a model going active.
func Info(format string, args ...any) {
	logf("[INFO] ", format, args...)
}

// Warn prints a recoverable problem, e.g. a rebuild that failed while
// the previous model stays active.
func Warn(format string, args ...any) {
	logf("[WARN] ", format, args...)
}

// Section marks the start of a pipeline stage, e.g. "Model Build".
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// logf writes one prefixed line when verbose mode is enabled.
func logf(prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, prefix+format+"\n", args...)
	}
}
