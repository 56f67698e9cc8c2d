package pkg

import (
	"fmt"
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans every write out to all of its writers.
// A failing writer does not stop the others; its error is collected.
type CombinedWriter struct {
	writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	cw := &CombinedWriter{}
	for _, w := range writers {
		if w != nil {
			cw.writers = append(cw.writers, w)
		}
	}
	return cw
}

func (cw *CombinedWriter) Len() int {
	return len(cw.writers)
}

// Write reports len(p) when at least one writer took the whole buffer,
// so a broken log file never silences stdout.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var (
		err     error
		written bool
	)
	for i, w := range cw.writers {
		n, werr := w.Write(p)
		if werr == nil && n < len(p) {
			werr = io.ErrShortWrite
		}
		if werr != nil {
			err = multierr.Append(err, fmt.Errorf("writer %d: %w", i, werr))
			continue
		}
		written = true
	}
	if !written {
		return 0, err
	}
	return len(p), err
}
