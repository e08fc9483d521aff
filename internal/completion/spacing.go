package completion

import "github.com/oakwood-commons/cxcomplete/internal/chunk"

// paramSpacer decides where a signature gets its optional padding space:
// once right after "(" when parameters follow, and once before the matching
// ")". A call without parameters never gets padded.
type paramSpacer struct {
	sawLeftParen      bool
	sawFunctionParams bool
}

// next consumes one main-text chunk kind and reports whether the padding
// space belongs in front of it.
func (s *paramSpacer) next(kind chunk.Kind) bool {
	switch {
	case kind == chunk.LeftParen:
		s.sawLeftParen = true
	case s.sawLeftParen && !s.sawFunctionParams &&
		kind != chunk.RightParen && kind != chunk.Informative:
		s.sawFunctionParams = true
		return true
	case s.sawFunctionParams && kind == chunk.RightParen:
		return true
	}
	return false
}
