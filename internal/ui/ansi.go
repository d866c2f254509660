package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Out and Err receive OK and Fail lines.
var (
	Out io.Writer = os.Stdout
	Err io.Writer = os.Stderr
)

// SetColorForcing overrides terminal detection. disable wins over force.
func SetColorForcing(force, disable bool) {
	switch {
	case disable:
		lipgloss.SetColorProfile(termenv.Ascii)
	case force:
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}

func OK(msg string)   { fmt.Fprintln(Out, current.Success.Render(current.SymOK+" "+msg)) }
func Fail(msg string) { fmt.Fprintln(Err, current.Error.Render(current.SymFail+" "+msg)) }
