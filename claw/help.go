package claw

import (
	"fmt"
	"io"
	"sort"
	"strings"

	clawio "github.com/dzonerzy/go-claw/io"
)

// PrintHelp writes a usage synopsis and one line per named parameter to w,
// required parameters before optional ones. The positional placeholder is
// rendered as <description> when the group is required with fixed arity,
// and [description] otherwise; when the configuration is ambiguous the
// synopsis carries a literal -- so users know to force the boundary.
func (p *Parser) PrintHelp(w io.Writer, programName string) {
	pal := clawio.NewPalette(w)

	required, optional := p.partitionNamed()

	fmt.Fprintf(w, "%s %s", pal.Heading.Sprint("Usage:"), programName)
	if len(required) > 0 {
		fmt.Fprint(w, " <required flags>")
	}
	if len(optional) > 0 {
		fmt.Fprint(w, " [optional flags]")
	}
	if p.Ambiguous() {
		fmt.Fprint(w, " --")
	}
	if p.positional != nil {
		// Required-and-fixed-arity and the bracketed form are mutually
		// exclusive by construction.
		if p.positional.IsRequired() && !VariableLength(p.positional) {
			fmt.Fprintf(w, " <%s>", p.positional.Description())
		} else {
			fmt.Fprintf(w, " [%s]", p.positional.Description())
		}
	}
	fmt.Fprintln(w)

	width := clawio.Width(w)
	if len(required) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, pal.Heading.Sprint("Required:"))
		p.printParams(w, pal, required, width)
	}
	if len(optional) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, pal.Heading.Sprint("Optional:"))
		p.printParams(w, pal, optional, width)
	}
}

// partitionNamed splits registered named parameters into required and
// optional sets, each sorted by display name for deterministic output.
func (p *Parser) partitionNamed() (required, optional []NamedParameter) {
	for _, param := range p.ordered {
		if param.IsRequired() {
			required = append(required, param)
		} else {
			optional = append(optional, param)
		}
	}
	byName := func(params []NamedParameter) {
		sort.Slice(params, func(i, j int) bool {
			return representationName(params[i]) < representationName(params[j])
		})
	}
	byName(required)
	byName(optional)
	return required, optional
}

func (p *Parser) printParams(w io.Writer, pal *clawio.Palette, params []NamedParameter, width int) {
	const indent = "  "

	// Align descriptions on the longest invocation column.
	col := 0
	for _, param := range params {
		if n := len(invocation(param)); n > col {
			col = n
		}
	}

	for _, param := range params {
		inv := invocation(param)
		pad := strings.Repeat(" ", col-len(inv)+2)
		desc := wrapText(param.Description(), width-len(indent)-col-2, len(indent)+col+2)
		fmt.Fprintf(w, "%s%s%s%s\n", indent, pal.Flag.Sprint(inv), pad, desc)
	}
}

// invocation renders how a flag is typed: "-n, --name", "--name" or "-n".
func invocation(param NamedParameter) string {
	short, long := param.ShortName(), param.LongName()
	switch {
	case short != "" && long != "":
		return "-" + short + ", --" + long
	case long != "":
		return "--" + long
	default:
		return "-" + short
	}
}

// wrapText wraps s at the given width, indenting continuation lines. A
// non-positive width disables wrapping.
func wrapText(s string, width, contIndent int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}
	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		if i > 0 && lineLen+1+len(word) > width {
			b.WriteByte('\n')
			b.WriteString(strings.Repeat(" ", contIndent))
			lineLen = 0
		} else if i > 0 {
			b.WriteByte(' ')
			lineLen++
		}
		b.WriteString(word)
		lineLen += len(word)
	}
	return b.String()
}
