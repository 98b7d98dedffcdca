package display

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Color modes accepted by ResolveColor
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// colorScheme holds the colors used for labeled output.
// Magenta: source names
// Cyan: separators
type colorScheme struct {
	name *color.Color
	sep  *color.Color
}

// newColorScheme creates the output color scheme. Each color is forced on or
// off so the result does not depend on fatih/color's global detection.
func newColorScheme(enabled bool) *colorScheme {
	scheme := &colorScheme{
		name: color.New(color.FgMagenta),
		sep:  color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{scheme.name, scheme.sep} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return scheme
}

// ValidateColorMode checks a --color value
func ValidateColorMode(mode string) error {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (expected auto, always or never)", mode)
	}
}

// ResolveColor decides whether output written to out should be colored.
// In auto mode color is used only for terminals and only when NO_COLOR is unset.
func ResolveColor(mode string, out io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	return isTerminal(out)
}

// isTerminal reports whether w is a terminal (including Cygwin/MSYS ptys)
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
