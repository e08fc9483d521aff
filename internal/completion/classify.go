package completion

import "github.com/oakwood-commons/cxcomplete/internal/chunk"

// IsMainTextChunk reports whether a chunk of the given kind belongs to the
// signature surface (insert and display text). Result types, plain text and
// anything unrecognized do not.
func IsMainTextChunk(kind chunk.Kind) bool {
	switch kind {
	case chunk.Optional,
		chunk.TypedText,
		chunk.Placeholder,
		chunk.LeftParen,
		chunk.RightParen,
		chunk.RightBracket,
		chunk.LeftBracket,
		chunk.LeftBrace,
		chunk.RightBrace,
		chunk.RightAngle,
		chunk.LeftAngle,
		chunk.Comma,
		chunk.Colon,
		chunk.SemiColon,
		chunk.Equal,
		chunk.Informative,
		chunk.HorizontalSpace:
		return true
	default:
		return false
	}
}
