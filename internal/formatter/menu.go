package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/cxcomplete/internal/completion"
)

const minLabelWidth = 20

// MenuOptions controls RenderMenu.
type MenuOptions struct {
	NoColor bool
	// Width is the total line width; 0 uses TerminalWidth.
	Width int
}

// RenderMenu renders one line per record in the completion-menu layout:
//
//	[label]  [kind]  [annotation]
//
// Columns are aligned by display width. The label is truncated first when a
// line would not fit.
func RenderMenu(records []completion.Record, opts MenuOptions) string {
	if len(records) == 0 {
		return ""
	}
	width := opts.Width
	if width <= 0 {
		width = TerminalWidth()
	}

	labelW, kindW, annotW := 0, 0, 0
	for _, rec := range records {
		labelW = max(labelW, runewidth.StringWidth(rec.DisplayText))
		kindW = max(kindW, runewidth.StringWidth(rec.Category.String()))
		annotW = max(annotW, runewidth.StringWidth(rec.Annotation))
	}

	sepW := runewidth.StringWidth(columnSep)
	if over := labelW + sepW + kindW + sepW + annotW - width; over > 0 {
		labelW = min(labelW, max(minLabelWidth, labelW-over))
	}

	var b strings.Builder
	for _, rec := range records {
		label := padRight(truncate(rec.DisplayText, labelW), labelW)
		kind := rec.Category.String()

		b.WriteString(styleLabel(label, opts.NoColor))
		b.WriteString(columnSep)
		if rec.Annotation == "" {
			b.WriteString(style(kindStyle, kind, opts.NoColor))
		} else {
			b.WriteString(style(kindStyle, padRight(kind, kindW), opts.NoColor))
			b.WriteString(columnSep)
			b.WriteString(style(annotationStyle, rec.Annotation, opts.NoColor))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// styleLabel highlights the name and dims the parameter list that follows
// the first parenthesis.
func styleLabel(label string, noColor bool) string {
	if noColor {
		return label
	}
	i := strings.IndexByte(label, '(')
	if i <= 0 {
		return labelStyle.Render(label)
	}
	return labelStyle.Render(label[:i]) + paramStyle.Render(label[i:])
}
