package source

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/harrison/grepr/internal/models"
)

// Line is one line of a source
type Line struct {
	Number int    // 1-based
	Text   string // Content without the trailing "\n"
}

// Lines iterates over the "\n"-delimited lines of one opened source.
// It has no line-length limit; a final line without a newline is still
// produced. Use it like bufio.Scanner:
//
//	for lines.Next() {
//	    line := lines.Line()
//	}
//	if err := lines.Err(); err != nil { ... }
type Lines struct {
	src    models.InputSource
	reader *bufio.Reader
	closer io.Closer
	line   Line
	err    error
	done   bool
}

func newLines(src models.InputSource, r io.Reader, closer io.Closer) *Lines {
	return &Lines{
		src:    src,
		reader: bufio.NewReaderSize(r, 64*1024),
		closer: closer,
	}
}

// Source returns the source being read
func (l *Lines) Source() models.InputSource {
	return l.src
}

// Next advances to the next line. It returns false at end of input or after
// a read error; Err distinguishes the two.
func (l *Lines) Next() bool {
	if l.done {
		return false
	}

	text, err := l.reader.ReadString('\n')
	switch {
	case err == nil:
		l.line = Line{Number: l.line.Number + 1, Text: strings.TrimSuffix(text, "\n")}
		return true
	case errors.Is(err, io.EOF):
		l.done = true
		if text == "" {
			return false
		}
		l.line = Line{Number: l.line.Number + 1, Text: text}
		return true
	default:
		// A partial line before a read failure is not reported
		l.done = true
		l.err = &SourceUnavailableError{Name: l.src.DisplayName, Err: err}
		return false
	}
}

// Line returns the current line
func (l *Lines) Line() Line {
	return l.line
}

// Err returns the read error that ended iteration, if any
func (l *Lines) Err() error {
	return l.err
}

// Close releases the underlying handle. It is safe to call more than once.
func (l *Lines) Close() error {
	l.done = true
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}
