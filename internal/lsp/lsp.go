// Package lsp converts completion records into Language Server Protocol
// completion items.
package lsp

import (
	"strconv"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/oakwood-commons/cxcomplete/internal/completion"
)

// Options controls the conversion.
type Options struct {
	// Snippets turns placeholders into ${n:text} tab stops. Without it the
	// markers are stripped and the insert text is plain.
	Snippets bool
}

// ToCompletionList converts every record. The list is always complete: the
// records are the full candidate set for the request.
func ToCompletionList(records []completion.Record, opts Options) protocol.CompletionList {
	items := make([]protocol.CompletionItem, len(records))
	for i, rec := range records {
		items[i] = ToCompletionItem(rec, opts)
	}
	return protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}
}

// ToCompletionItem converts one record.
func ToCompletionItem(rec completion.Record, opts Options) protocol.CompletionItem {
	item := protocol.CompletionItem{
		Label:  rec.DisplayText,
		Kind:   mapCompletionKind(rec.Category),
		Detail: stringPtrOrNil(rec.Annotation),
	}
	if rec.DocString != "" {
		item.Documentation = protocol.MarkupContent{
			Kind:  protocol.MarkupKindPlainText,
			Value: rec.DocString,
		}
	}
	if filter := filterText(rec.DisplayText); filter != rec.DisplayText {
		item.FilterText = &filter
	}

	var (
		insert string
		format protocol.InsertTextFormat
	)
	if opts.Snippets {
		insert = ToSnippet(rec.InsertText)
		format = protocol.InsertTextFormatSnippet
	} else {
		insert = completion.StripPlaceholderMarkers(rec.InsertText)
		format = protocol.InsertTextFormatPlainText
	}
	item.InsertText = &insert
	item.InsertTextFormat = &format
	return item
}

// mapCompletionKind maps record categories to LSP CompletionItemKind.
func mapCompletionKind(c completion.Category) *protocol.CompletionItemKind {
	var k protocol.CompletionItemKind
	switch c {
	case completion.CategoryStruct:
		k = protocol.CompletionItemKindStruct
	case completion.CategoryClass:
		k = protocol.CompletionItemKindClass
	case completion.CategoryEnum:
		k = protocol.CompletionItemKindEnum
	case completion.CategoryType:
		k = protocol.CompletionItemKindTypeParameter
	case completion.CategoryMember:
		k = protocol.CompletionItemKindField
	case completion.CategoryFunction:
		k = protocol.CompletionItemKindFunction
	case completion.CategoryVariable, completion.CategoryParameter:
		k = protocol.CompletionItemKindVariable
	case completion.CategoryMacro:
		k = protocol.CompletionItemKindConstant
	case completion.CategoryNamespace:
		k = protocol.CompletionItemKindModule
	default:
		k = protocol.CompletionItemKindText
	}
	return &k
}

// filterText is the label up to the first parenthesis, so typing "subs"
// matches "substr(size_type pos = 0, size_type n = npos) const".
func filterText(label string) string {
	if i := strings.IndexByte(label, '('); i > 0 {
		return label[:i]
	}
	return label
}

var snippetEscaper = strings.NewReplacer(`\`, `\\`, `$`, `\$`, `}`, `\}`)

// ToSnippet converts insert text with placeholder markers into LSP snippet
// syntax. Tab stops are numbered from 1 in order of appearance; markers that
// nest produce nested placeholders. A closing marker without an opener is
// kept as text.
func ToSnippet(insert string) string {
	var (
		b     strings.Builder
		plain strings.Builder
		depth int
		stop  int
	)
	flush := func() {
		b.WriteString(snippetEscaper.Replace(plain.String()))
		plain.Reset()
	}

	for _, r := range insert {
		switch s := string(r); s {
		case completion.PlaceholderOpen, completion.OptionalPlaceholderOpen:
			flush()
			stop++
			depth++
			b.WriteString("${")
			b.WriteString(strconv.Itoa(stop))
			b.WriteString(":")
		case completion.PlaceholderClose, completion.OptionalPlaceholderClose:
			if depth == 0 {
				plain.WriteString(s)
				continue
			}
			flush()
			depth--
			b.WriteString("}")
		default:
			plain.WriteRune(r)
		}
	}
	flush()
	for ; depth > 0; depth-- {
		b.WriteString("}")
	}
	return b.String()
}

func stringPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
