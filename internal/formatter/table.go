package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/cxcomplete/internal/completion"
)

// TableColumns is the column order of RenderTable and RenderCSV.
var TableColumns = []string{"CATEGORY", "DISPLAY", "ANNOTATION", "INSERT", "DEDUP", "DOC"}

const minColumnWidth = 6

// TableOptions controls RenderTable.
type TableOptions struct {
	NoColor bool
	// Width is the total table width; 0 uses TerminalWidth.
	Width int
}

// TableRow returns the cells of a record in TableColumns order.
func TableRow(rec completion.Record) []string {
	return []string{
		rec.Category.String(),
		rec.DisplayText,
		rec.Annotation,
		rec.InsertText,
		rec.DedupKey,
		rec.DocString,
	}
}

// RenderTable renders every record field as a columnar table with a header
// and a separator line. When the natural width exceeds the available width,
// the widest column gives up space first.
func RenderTable(records []completion.Record, opts TableOptions) string {
	width := opts.Width
	if width <= 0 {
		width = TerminalWidth()
	}

	rows := make([][]string, len(records))
	for i, rec := range records {
		row := TableRow(rec)
		for j := range row {
			row[j] = singleLine(row[j])
		}
		rows[i] = row
	}

	widths := calculateColumnWidths(TableColumns, rows, width)
	total := 0
	for _, w := range widths {
		total += w
	}
	total += len(columnSep) * (len(widths) - 1)

	var b strings.Builder
	header := make([]string, len(TableColumns))
	for i, col := range TableColumns {
		header[i] = style(headerStyle, padRight(truncate(col, widths[i]), widths[i]), opts.NoColor)
	}
	b.WriteString(strings.Join(header, columnSep) + "\n")
	b.WriteString(style(separatorStyle, strings.Repeat("─", total), opts.NoColor) + "\n")

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = padRight(truncate(cell, widths[i]), widths[i])
		}
		if !opts.NoColor {
			cells[0] = kindStyle.Render(cells[0])
			cells[1] = styleLabel(cells[1], false)
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, columnSep), " ") + "\n")
	}
	return b.String()
}

// calculateColumnWidths starts from the natural width of every column and
// shrinks the widest one, a cell at a time, until the row fits or every
// column is at its minimum.
func calculateColumnWidths(columns []string, rows [][]string, available int) []int {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = runewidth.StringWidth(col)
	}
	for _, row := range rows {
		for i := range columns {
			if i < len(row) {
				widths[i] = max(widths[i], runewidth.StringWidth(row[i]))
			}
		}
	}

	usable := available - len(columnSep)*(len(columns)-1)
	for sum(widths) > usable {
		widest := 0
		for i, w := range widths {
			if w > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= minColumnWidth {
			break
		}
		widths[widest]--
	}
	return widths
}

func sum(ns []int) int {
	total := 0
	for _, n := range ns {
		total += n
	}
	return total
}
