// Package formatter renders completion records for a terminal: the
// completion-menu layout, a full-field table, preview blocks and a category
// tree. Widths are measured in terminal cells, so the wide placeholder glyphs
// and CJK identifiers line up.
package formatter

import (
	"image/color"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const (
	defaultTerminalWidth = 120
	columnSep            = "  "
	ellipsis             = "..."
)

var (
	defaultHeaderFG   = lipgloss.Color("12")
	defaultHeaderBG   = lipgloss.Color("236")
	defaultLabelColor = lipgloss.Color("14")
	defaultParamColor = lipgloss.Color("248")
	defaultKindColor  = lipgloss.Color("13")
	defaultSeparator  = lipgloss.Color("240")

	headerStyle     lipgloss.Style
	labelStyle      lipgloss.Style
	paramStyle      lipgloss.Style
	kindStyle       lipgloss.Style
	annotationStyle lipgloss.Style
	separatorStyle  lipgloss.Style
)

// TableColors controls the rendered colors. Nil fields fall back to the
// defaults (ANSI 256 codes).
type TableColors struct {
	HeaderFG       color.Color
	HeaderBG       color.Color
	LabelColor     color.Color
	ParamColor     color.Color
	KindColor      color.Color
	SeparatorColor color.Color
}

func applyTableTheme(tc TableColors) {
	hfg := orDefault(tc.HeaderFG, defaultHeaderFG)
	hbg := orDefault(tc.HeaderBG, defaultHeaderBG)
	sep := orDefault(tc.SeparatorColor, defaultSeparator)

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(hfg).Background(hbg)
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(orDefault(tc.LabelColor, defaultLabelColor))
	paramStyle = lipgloss.NewStyle().Foreground(orDefault(tc.ParamColor, defaultParamColor))
	kindStyle = lipgloss.NewStyle().Foreground(orDefault(tc.KindColor, defaultKindColor))
	annotationStyle = lipgloss.NewStyle().Italic(true).Foreground(sep)
	separatorStyle = lipgloss.NewStyle().Foreground(sep)
}

func orDefault(c, def color.Color) color.Color {
	if c == nil {
		return def
	}
	return c
}

// SetTableTheme overrides the package styles. Zero-valued fields fall back
// to the defaults.
func SetTableTheme(tc TableColors) {
	applyTableTheme(tc)
}

//nolint:gochecknoinits // initialize default theme for package consumers
func init() {
	applyTableTheme(TableColors{})
}

// TerminalWidth returns the width of the terminal on stdout, or 120 when
// stdout is not a terminal.
func TerminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultTerminalWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}
	return width
}

// IsTerminal reports whether stdout is a terminal. Color is only useful
// there.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// truncate shortens s to maxWidth cells, ending in "..." when there is room.
func truncate(s string, maxWidth int) string {
	if maxWidth <= 0 || runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth < len(ellipsis) {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, ellipsis)
}

// padRight pads s with spaces to width cells. Longer strings are returned
// unchanged; callers truncate first.
func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// singleLine flattens line breaks so a table row stays on one line.
func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.ReplaceAll(s, "\n", `\n`)
}

func style(s lipgloss.Style, text string, noColor bool) string {
	if noColor || text == "" {
		return text
	}
	return s.Render(text)
}
