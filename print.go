package navbar

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// PrintEntries formats the registry as a numbered table, one entry per line.
func PrintEntries(reg *Registry) string {
	width := 0
	for _, e := range reg.All() {
		width = max(width, utf8.RuneCountInString(e.Label))
	}
	var sb strings.Builder
	for i, e := range reg.All() {
		pad := strings.Repeat(" ", width-utf8.RuneCountInString(e.Label))
		fmt.Fprintf(&sb, "%d. %s%s  %s\n", i+1, e.Label, pad, e.Path)
	}
	return sb.String()
}
