package source

import (
	"io"
	"os"

	"github.com/harrison/grepr/internal/models"
)

// Opener turns InputSources into line iterators
type Opener struct {
	// Stdin backs the standard-input source. Nil means stdin is unavailable.
	Stdin io.Reader
}

// Open opens src for reading. The caller must Close the returned Lines.
// Standard input is never closed by Lines, so "-" may appear more than once
// (later occurrences simply read nothing).
func (o Opener) Open(src models.InputSource) (*Lines, error) {
	if src.IsStdin() {
		return o.openStdin(src)
	}

	info, err := os.Stat(src.Path)
	if err != nil {
		return nil, &SourceUnavailableError{Name: src.DisplayName, Err: err}
	}
	if info.IsDir() {
		return nil, &IsADirectoryError{Name: src.DisplayName}
	}

	f, err := os.Open(src.Path)
	if err != nil {
		return nil, &SourceUnavailableError{Name: src.DisplayName, Err: err}
	}
	return newLines(src, f, f), nil
}

func (o Opener) openStdin(src models.InputSource) (*Lines, error) {
	if o.Stdin == nil {
		return nil, &SourceUnavailableError{Name: src.DisplayName, Err: errStdinUnavailable}
	}
	// A closed descriptor fails Stat
	if f, ok := o.Stdin.(*os.File); ok {
		if _, err := f.Stat(); err != nil {
			return nil, &SourceUnavailableError{Name: src.DisplayName, Err: err}
		}
	}
	return newLines(src, o.Stdin, nil), nil
}
