// Package search runs a SearchRequest against its sources and streams the
// results as events.
//
// The stream is lazy: nothing is opened until the consumer pulls, and each
// source is fully closed before the next one is opened. Stopping the range
// loop early, or cancelling the context, releases any open handle.
package search

import (
	"context"
	"fmt"
	"io"
	"iter"

	"github.com/harrison/grepr/internal/matcher"
	"github.com/harrison/grepr/internal/models"
	"github.com/harrison/grepr/internal/source"
)

// Logger is the logging surface used by the engine
type Logger interface {
	LogDebug(message string)
	LogWarn(message string)
}

// Engine executes searches
type Engine struct {
	opener source.Opener
	logger Logger
}

// NewEngine creates an Engine reading standard input from stdin.
// A nil stdin makes "-" targets fail as unavailable; a nil logger discards messages.
func NewEngine(stdin io.Reader, logger Logger) *Engine {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Engine{
		opener: source.Opener{Stdin: stdin},
		logger: logger,
	}
}

// Run validates req and compiles its pattern, then returns the event stream.
//
// Validation and compilation failures are returned immediately and nothing is
// opened. Per-source failures never stop the run; they appear in the stream as
// EventError and scanning continues with the next source.
func (e *Engine) Run(ctx context.Context, req models.SearchRequest) (iter.Seq[models.Event], error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	m, err := matcher.New(req.Pattern, matcher.Options{
		CaseInsensitive: req.CaseInsensitive,
		Engine:          req.EffectiveEngine(),
	})
	if err != nil {
		return nil, err
	}

	enumerator := source.NewEnumerator(source.EnumerateOptions{
		IncludeBinary:    req.IncludeBinary,
		ExcludeDirs:      req.ExcludeDirs,
		RespectGitignore: req.RespectGitignore,
	}, e.logger)

	return func(yield func(models.Event) bool) {
		for entry := range enumerator.Enumerate(ctx, req.Targets, req.Recursive) {
			if ctx.Err() != nil {
				return
			}
			if entry.Err != nil {
				if !yield(models.ErrorEvent(entry.Source, entry.Err)) {
					return
				}
				continue
			}
			if !e.scan(ctx, entry.Source, m, req, yield) {
				return
			}
		}
	}, nil
}

// scan reads one source to completion. It returns false when the consumer
// stopped pulling or the context was cancelled.
func (e *Engine) scan(ctx context.Context, src models.InputSource, m matcher.Matcher, req models.SearchRequest, yield func(models.Event) bool) bool {
	lines, err := e.opener.Open(src)
	if err != nil {
		return yield(models.ErrorEvent(src, err))
	}
	defer lines.Close()

	return e.drain(ctx, lines, m, req, yield)
}

// drain emits the events for an opened source
func (e *Engine) drain(ctx context.Context, lines *source.Lines, m matcher.Matcher, req models.SearchRequest, yield func(models.Event) bool) bool {
	src := lines.Source()
	e.logger.LogDebug(fmt.Sprintf("scanning %s", src.DisplayName))

	count := 0
	for lines.Next() {
		if ctx.Err() != nil {
			return false
		}

		line := lines.Line()
		if m.Match(line.Text) == req.Invert {
			continue
		}

		if req.CountOnly {
			count++
			continue
		}

		rec := models.MatchRecord{
			Source:     src,
			LineNumber: line.Number,
			Text:       line.Text,
			Matched:    true,
		}
		if !yield(models.MatchEvent(rec)) {
			return false
		}
	}

	if err := lines.Err(); err != nil {
		e.logger.LogWarn(fmt.Sprintf("%s: read failed after %d lines", src.DisplayName, lines.Line().Number))
		return yield(models.ErrorEvent(src, err))
	}

	if req.CountOnly {
		return yield(models.SummaryEvent(models.SourceSummary{Source: src, Count: count}))
	}
	return true
}

type nopLogger struct{}

func (nopLogger) LogDebug(string) {}
func (nopLogger) LogWarn(string)  {}
