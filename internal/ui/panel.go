package ui

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string { return ansiRegexp.ReplaceAllString(s, "") }

// Width is the number of terminal cells s occupies, ignoring color codes.
func Width(s string) int { return runewidth.StringWidth(stripANSI(s)) }

// Truncate cuts plain text to at most max cells, ending in the theme's ellipsis.
func Truncate(s string, max int) string {
	if runewidth.StringWidth(s) <= max {
		return s
	}
	return runewidth.Truncate(s, max, current.Ellipsis)
}

// Panel draws a framed box around lines using the current theme.
func Panel(w io.Writer, lines []string) {
	t := current
	maxw := 0
	for _, ln := range lines {
		if n := Width(ln); n > maxw {
			maxw = n
		}
	}
	border := func(l, r string) string {
		return C(t.Muted, l+strings.Repeat(t.H, maxw+2)+r)
	}
	fmt.Fprintln(w, border(t.CornerTL, t.CornerTR))
	for _, ln := range lines {
		pad := strings.Repeat(" ", maxw-Width(ln))
		fmt.Fprintln(w, C(t.Muted, t.V)+" "+ln+pad+" "+C(t.Muted, t.V))
	}
	fmt.Fprintln(w, border(t.CornerBL, t.CornerBR))
}
