package clawio

import (
	stdio "io"
	"os"

	"github.com/fatih/color"
)

// Palette groups the styles used by help and error rendering. Styles are
// no-ops when the target writer is not a terminal or NO_COLOR is set, so
// rendering code never has to branch on capability.
type Palette struct {
	Heading *color.Color
	Flag    *color.Color
	Error   *color.Color
}

// NewPalette builds a palette for w.
func NewPalette(w stdio.Writer) *Palette {
	p := &Palette{
		Heading: color.New(color.Bold),
		Flag:    color.New(color.FgCyan),
		Error:   color.New(color.FgRed, color.Bold),
	}
	if !colorEnabled(w) {
		p.Heading.DisableColor()
		p.Flag.DisableColor()
		p.Error.DisableColor()
	}
	return p
}

func colorEnabled(w stdio.Writer) bool {
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	return IsTerminal(w)
}
