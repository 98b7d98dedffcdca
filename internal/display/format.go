package display

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/harrison/grepr/internal/models"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// LabelMode selects when source names prefix output lines
type LabelMode int

const (
	// LabelAuto labels when several targets were given or the source came from recursion.
	LabelAuto LabelMode = iota
	// LabelAlways labels every line (-H).
	LabelAlways
	// LabelNever labels nothing (--no-filename).
	LabelNever
)

// Options configures a Formatter
type Options struct {
	Format      string
	Labels      LabelMode
	MultiTarget bool // More than one target argument was given
	Color       bool // Colorize text output
}

// Formatter writes result events to an output stream
type Formatter interface {
	// WriteEvent renders one event. Text output skips error events, since
	// those are reported on stderr.
	WriteEvent(ev models.Event) error
	// Flush writes any buffered output
	Flush() error
}

// ValidateFormat checks a --format value
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("invalid output format %q (expected text, json or yaml)", format)
	}
}

// NewFormatter creates a Formatter for opts.Format. An empty format means text.
func NewFormatter(out io.Writer, opts Options) (Formatter, error) {
	switch opts.Format {
	case FormatText, "":
		return &textFormatter{
			out:    bufio.NewWriter(out),
			opts:   opts,
			colors: newColorScheme(opts.Color),
		}, nil
	case FormatJSON:
		w := bufio.NewWriter(out)
		return &jsonFormatter{out: w, enc: json.NewEncoder(w)}, nil
	case FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		return &yamlFormatter{enc: enc}, nil
	default:
		return nil, ValidateFormat(opts.Format)
	}
}

// ShouldLabel applies the labeling rule to one source
func ShouldLabel(mode LabelMode, multiTarget bool, src models.InputSource) bool {
	switch mode {
	case LabelAlways:
		return true
	case LabelNever:
		return false
	default:
		return multiTarget || src.Expanded
	}
}

// textFormatter writes grep-style lines
type textFormatter struct {
	out    *bufio.Writer
	opts   Options
	colors *colorScheme
}

func (f *textFormatter) WriteEvent(ev models.Event) error {
	var body string
	switch ev.Kind {
	case models.EventMatch:
		body = ev.Record.Text
	case models.EventSummary:
		body = strconv.Itoa(ev.Summary.Count)
	default:
		return nil
	}

	if ShouldLabel(f.opts.Labels, f.opts.MultiTarget, ev.Source) {
		f.out.WriteString(f.colors.name.Sprint(ev.Source.DisplayName))
		f.out.WriteString(f.colors.sep.Sprint(":"))
	}
	f.out.WriteString(body)
	return f.out.WriteByte('\n')
}

func (f *textFormatter) Flush() error {
	return f.out.Flush()
}

// matchDoc is the structured form of a match event
type matchDoc struct {
	Type   string `json:"type" yaml:"type"`
	Source string `json:"source" yaml:"source"`
	Line   int    `json:"line" yaml:"line"`
	Text   string `json:"text" yaml:"text"`
}

// summaryDoc is the structured form of a count-mode summary
type summaryDoc struct {
	Type   string `json:"type" yaml:"type"`
	Source string `json:"source" yaml:"source"`
	Count  int    `json:"count" yaml:"count"`
}

// errorDoc is the structured form of a per-source failure
type errorDoc struct {
	Type   string `json:"type" yaml:"type"`
	Source string `json:"source" yaml:"source"`
	Error  string `json:"error" yaml:"error"`
}

// document converts an event into its structured form
func document(ev models.Event) any {
	switch ev.Kind {
	case models.EventMatch:
		return matchDoc{
			Type:   ev.Kind.String(),
			Source: ev.Source.DisplayName,
			Line:   ev.Record.LineNumber,
			Text:   ev.Record.Text,
		}
	case models.EventSummary:
		return summaryDoc{
			Type:   ev.Kind.String(),
			Source: ev.Source.DisplayName,
			Count:  ev.Summary.Count,
		}
	default:
		msg := "unknown error"
		if ev.Err != nil {
			msg = ev.Err.Error()
		}
		return errorDoc{
			Type:   ev.Kind.String(),
			Source: ev.Source.DisplayName,
			Error:  msg,
		}
	}
}

// jsonFormatter writes newline-delimited JSON objects
type jsonFormatter struct {
	out *bufio.Writer
	enc *json.Encoder
}

func (f *jsonFormatter) WriteEvent(ev models.Event) error {
	if err := f.enc.Encode(document(ev)); err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	return nil
}

func (f *jsonFormatter) Flush() error {
	return f.out.Flush()
}

// yamlFormatter writes one YAML document per event
type yamlFormatter struct {
	enc     *yaml.Encoder
	encoded bool
}

func (f *yamlFormatter) WriteEvent(ev models.Event) error {
	if err := f.enc.Encode(document(ev)); err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	f.encoded = true
	return nil
}

// Flush closes the encoder, which writes any pending document. An encoder
// that never started a stream cannot be closed, and an empty run writes nothing.
func (f *yamlFormatter) Flush() error {
	if !f.encoded {
		return nil
	}
	return f.enc.Close()
}
