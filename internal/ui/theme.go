package ui

import "strings"

// Theme bundles palette, symbols and box borders.
type Theme struct {
	Name                                   string
	Title, Muted, Accent, Success, Error   string
	CornerTL, CornerTR, CornerBL, CornerBR string
	H, V                                   string
	SymOK, SymFail, Bullet, Ellipsis       string
}

var themes = map[string]Theme{
	"classic": {
		Name:  "classic",
		Title: bold, Muted: fgGray, Accent: fgBlue,
		Success: fgGreen, Error: fgRed,
		CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
		H: "─", V: "│",
		SymOK: "✔", SymFail: "✖", Bullet: "•", Ellipsis: "…",
	},
	"neon": {
		Name:  "neon",
		Title: "\033[95m", Muted: fgGray, Accent: "\033[96m",
		Success: fgGreen, Error: fgRed,
		CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
		H: "─", V: "│",
		SymOK: "✔", SymFail: "✖", Bullet: "◆", Ellipsis: "…",
	},
	"mono": {
		Name:     "mono",
		CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
		H: "-", V: "|",
		SymOK: "ok", SymFail: "error:", Bullet: "-", Ellipsis: "...",
	},
}

var current = themes["classic"]

// SetTheme switches the active theme and reports whether name was known.
// Unknown names fall back to classic.
func SetTheme(name string) bool {
	t, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		t = themes["classic"]
	}
	current = t
	return ok
}

func Current() Theme { return current }
