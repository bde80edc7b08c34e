package transcript

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// separator closes each transcript block.
const separator = "--------------------------------------------------"

// Writer appends exchanges to a flat text transcript. Every Append opens
// the file in append mode, writes one block, and closes it before
// returning; no handle is retained across calls.
type Writer struct {
	path string
}

// NewWriter creates a writer for the given transcript path. The file is
// created on first append.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the transcript file path.
func (w *Writer) Path() string {
	return w.path
}

// Append writes one timestamped exchange block:
//
//	[<timestamp>]
//	User: <text>
//	Assistant: <text>
//	--------------------------------------------------
func (w *Writer) Append(user, assistant string) error {
	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening transcript: %w", err)
	}
	defer f.Close()

	var block strings.Builder
	fmt.Fprintf(&block, "\n[%s]\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(&block, "User: %s\n", user)
	fmt.Fprintf(&block, "Assistant: %s\n", assistant)
	block.WriteString(separator + "\n")

	if _, err := f.WriteString(block.String()); err != nil {
		return fmt.Errorf("writing transcript: %w", err)
	}
	return nil
}
