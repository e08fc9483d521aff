package completion

import (
	"strings"

	"github.com/oakwood-commons/cxcomplete/internal/chunk"
)

// Placeholder delimiters. Required parameters use the outer pair; anything
// inside an optional group uses the nested pair so the UI can tell them apart.
const (
	PlaceholderOpen          = "⟪"
	PlaceholderClose         = "⟫"
	OptionalPlaceholderOpen  = "⟦"
	OptionalPlaceholderClose = "⟧"
)

// RenderChunk returns the text of a single chunk, wrapping placeholders in the
// given delimiters.
func RenderChunk(c chunk.Chunk, open, closing string) string {
	if c.Kind == chunk.Placeholder {
		return open + c.Text + closing
	}
	return c.Text
}

// ExpandOptionalGroup renders a nested optional group, recursing into any
// further optional groups. Every chunk in the group is rendered; the nested
// delimiter pair is used at every depth.
func ExpandOptionalGroup(group []chunk.Chunk) string {
	var b strings.Builder
	expandInto(&b, group)
	return b.String()
}

func expandInto(b *strings.Builder, group []chunk.Chunk) {
	for _, c := range group {
		if c.Kind == chunk.Optional {
			expandInto(b, c.Group)
			continue
		}
		b.WriteString(RenderChunk(c, OptionalPlaceholderOpen, OptionalPlaceholderClose))
	}
}
