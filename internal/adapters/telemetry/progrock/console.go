package progrock

import (
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
)

var _ progrock.Writer = (*ConsoleWriter)(nil)

// ConsoleWriter renders status updates as plain text lines: task output
// as it streams in, and one status line per finished vertex.
type ConsoleWriter struct {
	mu   sync.Mutex
	out  io.Writer
	done map[string]bool
}

// NewConsoleWriter creates a ConsoleWriter rendering to out.
func NewConsoleWriter(out io.Writer) *ConsoleWriter {
	return &ConsoleWriter{
		out:  out,
		done: make(map[string]bool),
	}
}

// WriteStatus renders the update. Vertices report repeatedly over their
// lifetime, so the status line is printed once, on first completion.
func (w *ConsoleWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, log := range update.Logs {
		if _, err := w.out.Write(log.Data); err != nil {
			return err
		}
	}

	for _, v := range update.Vertexes {
		if v.Completed == nil || w.done[v.Id] {
			continue
		}
		w.done[v.Id] = true

		var err error
		switch {
		case v.Error != nil:
			_, err = fmt.Fprintf(w.out, "✗ %s: %s\n", v.Name, v.GetError())
		case v.GetCached():
			_, err = fmt.Fprintf(w.out, "✓ %s (up to date)\n", v.Name)
		default:
			_, err = fmt.Fprintf(w.out, "✓ %s\n", v.Name)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// Close implements progrock.Writer.
func (w *ConsoleWriter) Close() error { return nil }
