package models

// StdinOrigin is the OriginID used for the standard input source
const StdinOrigin = "<stdin>"

// StdinDisplayName is how standard input is labeled in output
const StdinDisplayName = "(standard input)"

// InputSource identifies one readable origin of lines.
// It carries identity only; opening it is the job of the source package.
type InputSource struct {
	OriginID    string // File path, or StdinOrigin
	DisplayName string // Label used in multi-source output
	Path        string // Filesystem path; empty for stdin
	Expanded    bool   // Discovered by directory recursion rather than named directly
}

// StdinSource returns the InputSource for standard input
func StdinSource() InputSource {
	return InputSource{
		OriginID:    StdinOrigin,
		DisplayName: StdinDisplayName,
	}
}

// FileSource returns the InputSource for a file path
func FileSource(path string, expanded bool) InputSource {
	return InputSource{
		OriginID:    path,
		DisplayName: path,
		Path:        path,
		Expanded:    expanded,
	}
}

// IsStdin reports whether the source is standard input
func (s InputSource) IsStdin() bool {
	return s.OriginID == StdinOrigin
}
