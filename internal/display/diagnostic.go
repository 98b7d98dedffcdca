package display

import (
	"fmt"
	"io"
)

// ProgramName prefixes every diagnostic line
const ProgramName = "grepr"

// Diagnostic writes "grepr: <err>" to out. Errors from the source package
// already carry the source name, so no name is added here.
func Diagnostic(out io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(out, "%s: %s\n", ProgramName, err)
}
