package formatter

import (
	"strings"

	"github.com/oakwood-commons/cxcomplete/internal/completion"
)

// RenderPreview prints the preview block of every record, separated by a
// blank line. Records without a completion string have no preview and are
// skipped.
func RenderPreview(records []completion.Record) string {
	var b strings.Builder
	for _, rec := range records {
		if rec.PreviewText == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(rec.PreviewText)
	}
	return b.String()
}
