package display

import "github.com/harrison/grepr/internal/models"

// Exit statuses
const (
	ExitMatch   = 0 // At least one line matched (or one source counted above zero)
	ExitNoMatch = 1 // Nothing matched and nothing failed
	ExitError   = 2 // A source failed, or the request itself was invalid
)

// Tally accumulates what a run produced
type Tally struct {
	Matches         int // Match events seen
	PositiveSources int // Summaries with a count above zero
	Sources         int // Count-mode summaries seen
	Errors          int // Error events seen
}

// Observe records one event
func (t *Tally) Observe(ev models.Event) {
	switch ev.Kind {
	case models.EventMatch:
		t.Matches++
	case models.EventSummary:
		t.Sources++
		if ev.Summary.Count > 0 {
			t.PositiveSources++
		}
	case models.EventError:
		t.Errors++
	}
}

// Found reports whether the run found anything, in either mode
func (t *Tally) Found() bool {
	return t.Matches > 0 || t.PositiveSources > 0
}

// ExitCode maps the tally to an exit status. Errors take precedence.
func (t *Tally) ExitCode() int {
	switch {
	case t.Errors > 0:
		return ExitError
	case t.Found():
		return ExitMatch
	default:
		return ExitNoMatch
	}
}
