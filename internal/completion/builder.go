//revive:disable:exported
package completion

import (
	"strings"

	"github.com/go-logr/logr"

	"github.com/oakwood-commons/cxcomplete/internal/chunk"
)

// Source is what the analyzer hands over for a single candidate.
type Source interface {
	// CursorKind returns the declaration kind, used only for the category.
	CursorKind() chunk.CursorKind

	// CompletionChunks returns the chunk sequence, or nil when the analyzer
	// produced no completion string at all.
	CompletionChunks() []chunk.Chunk

	// BriefComment returns the documentation summary, possibly empty.
	BriefComment() string
}

//revive:enable:exported

// Options configures a Builder.
type Options struct {
	// ExtraSpace pads parameter lists: "foo( int x )" instead of "foo(int x)".
	ExtraSpace bool

	// Logger receives V(1) diagnostics about odd candidates. Defaults to a
	// discarding logger.
	Logger logr.Logger
}

// Builder turns candidates into Records. It holds no per-candidate state and
// is safe for concurrent use.
type Builder struct {
	extraSpace string
	log        logr.Logger
}

// NewBuilder creates a Builder. The options are captured once; later changes
// to the caller's configuration only affect builders created afterwards.
func NewBuilder(opts Options) *Builder {
	b := &Builder{log: opts.Logger}
	if b.log.GetSink() == nil {
		b.log = logr.Discard()
	}
	if opts.ExtraSpace {
		b.extraSpace = " "
	}
	return b
}

// ExtraSpace reports whether this builder pads parameter lists.
func (b *Builder) ExtraSpace() bool {
	return b.extraSpace != ""
}

// Build renders one candidate. It never fails: a candidate without a
// completion string yields a record carrying only its category.
func (b *Builder) Build(src Source) Record {
	rec := Record{Category: CategoryFor(src.CursorKind())}

	chunks := src.CompletionChunks()
	if chunks == nil {
		b.log.V(1).Info("candidate has no completion string", "cursorKind", src.CursorKind().String())
		return rec
	}

	var (
		insert  strings.Builder
		display strings.Builder
		spacer  paramSpacer
	)

	for i, c := range chunks {
		if IsMainTextChunk(c.Kind) {
			if spacer.next(c.Kind) {
				insert.WriteString(b.extraSpace)
				display.WriteString(b.extraSpace)
			}

			if c.Kind == chunk.Optional {
				text := ExpandOptionalGroup(c.Group)
				insert.WriteString(text)
				display.WriteString(text)
			} else {
				text := RenderChunk(c, PlaceholderOpen, PlaceholderClose)
				if c.Kind != chunk.Informative {
					insert.WriteString(text)
				}
				display.WriteString(text)
			}
		}

		switch c.Kind {
		case chunk.ResultType:
			rec.Annotation = RenderChunk(c, PlaceholderOpen, PlaceholderClose)
		case chunk.Unrecognized:
			b.log.V(1).Info("skipping unrecognized chunk", "index", i, "text", c.Text)
		}
	}

	rec.DisplayText = StripPlaceholderMarkers(StripDoubleUnderscore(display.String()))
	rec.InsertText = StripDoubleUnderscore(insert.String())
	rec.DedupKey = StripQualifiers(StripPlaceholderMarkers(rec.InsertText))

	brief := src.BriefComment()
	rec.DocString = brief
	rec.PreviewText = previewText(brief, rec.Annotation, rec.DisplayText)

	return rec
}

func previewText(brief, annotation, display string) string {
	var b strings.Builder
	if brief != "" {
		b.WriteString(brief)
		b.WriteString("\n")
	}
	b.WriteString(annotation)
	b.WriteString(" ")
	b.WriteString(display)
	b.WriteString("\n")
	return b.String()
}
