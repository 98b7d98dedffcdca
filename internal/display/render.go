package display

import (
	"fmt"
	"io"
	"iter"

	"github.com/harrison/grepr/internal/models"
)

// Render drains events into f, writing a diagnostic to stderr for each error
// event. It stops at the first output write failure.
func Render(events iter.Seq[models.Event], f Formatter, stderr io.Writer) (Tally, error) {
	var tally Tally
	for ev := range events {
		tally.Observe(ev)
		if ev.Kind == models.EventError {
			Diagnostic(stderr, ev.Err)
		}
		if err := f.WriteEvent(ev); err != nil {
			return tally, err
		}
	}
	if err := f.Flush(); err != nil {
		return tally, fmt.Errorf("failed to write output: %w", err)
	}
	return tally, nil
}
