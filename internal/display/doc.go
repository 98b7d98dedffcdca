// Package display renders search results for the terminal and for machines.
//
// It sits at the boundary between the search engine's event stream and the
// process's output streams. It has four parts:
//
// # Formatters
//
// A Formatter writes events to stdout in one of three formats:
//
//	f, err := display.NewFormatter(os.Stdout, display.Options{
//	    Format:      display.FormatText,
//	    Labels:      display.LabelAuto,
//	    MultiTarget: len(targets) > 1,
//	})
//
// Text output is grep style: "name:line" when labeled, "line" otherwise, and
// "name:count" or "count" in count mode. JSON output is one object per line.
// YAML output is one document per event.
//
// # Labeling
//
// With LabelAuto a line is prefixed with its source name when more than one
// target was given or when the source was found by descending a directory.
// LabelAlways and LabelNever override this.
//
// # Diagnostics
//
// Per-source errors are written to stderr as one line each:
//
//	grepr: missing.txt: no such file or directory
//
// # Exit status
//
// Tally observes every event and maps the run to an exit status:
// ExitMatch (0), ExitNoMatch (1) or ExitError (2). Errors win over matches.
//
// Render ties these together for a complete run.
package display
