package models

// EventKind distinguishes the items of a result stream
type EventKind int

const (
	// EventMatch carries one reported line.
	EventMatch EventKind = iota
	// EventSummary carries the per-source count in count mode.
	EventSummary
	// EventError carries a per-source failure.
	EventError
)

// String returns the string representation of EventKind.
func (k EventKind) String() string {
	switch k {
	case EventMatch:
		return "match"
	case EventSummary:
		return "summary"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// MatchRecord is one reported line
type MatchRecord struct {
	Source     InputSource // Where the line came from
	LineNumber int         // 1-based line number
	Text       string      // Line content without the trailing newline
	Matched    bool        // Effective match (raw match XOR invert)
}

// SourceSummary is the aggregate for one fully drained source in count mode
type SourceSummary struct {
	Source InputSource
	Count  int
}

// Event is one item of the result stream.
// Exactly one of Record, Summary or Err is meaningful, selected by Kind.
type Event struct {
	Kind    EventKind
	Source  InputSource
	Record  MatchRecord
	Summary SourceSummary
	Err     error
}

// MatchEvent wraps a MatchRecord
func MatchEvent(rec MatchRecord) Event {
	return Event{Kind: EventMatch, Source: rec.Source, Record: rec}
}

// SummaryEvent wraps a SourceSummary
func SummaryEvent(sum SourceSummary) Event {
	return Event{Kind: EventSummary, Source: sum.Source, Summary: sum}
}

// ErrorEvent wraps a per-source failure
func ErrorEvent(src InputSource, err error) Event {
	return Event{Kind: EventError, Source: src, Err: err}
}
