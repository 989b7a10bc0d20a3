package diagnostic

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var severityColors = map[Severity]func(format string, a ...any) string{
	SeverityInfo:    color.New(color.FgCyan).SprintfFunc(),
	SeverityWarning: color.New(color.FgYellow).SprintfFunc(),
	SeverityError:   color.New(color.FgRed).SprintfFunc(),
}

// Fprint renders all diagnostics to w, one per line, errors first,
// with the severity label colorized when w is a terminal.
func Fprint(w io.Writer, d *Diagnostics) {
	for _, diag := range d.All() {
		label := diag.Severity.String()
		if paint, ok := severityColors[diag.Severity]; ok {
			label = paint("%s", label)
		}
		fmt.Fprintf(w, "%s: %s\n", label, diag.String())
	}
}
