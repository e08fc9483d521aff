package formatter

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/oakwood-commons/cxcomplete/internal/completion"
)

// RenderCSV writes a header row and one row per record in TableColumns
// order.
func RenderCSV(records []completion.Record) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := make([]string, len(TableColumns))
	for i, col := range TableColumns {
		header[i] = strings.ToLower(col)
	}
	if err := w.Write(header); err != nil {
		return "", err
	}
	for _, rec := range records {
		if err := w.Write(TableRow(rec)); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
