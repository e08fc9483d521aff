// Package chunk models the completion strings produced by a C-family semantic
// analyzer: an ordered sequence of labeled chunks, some of which nest further
// chunk sequences for optional parameters.
package chunk

import "strings"

// Kind identifies what a single chunk of a completion string represents.
type Kind int

// Chunk kinds. The names follow the analyzer's own spelling so candidate
// documents can be written by hand from its output.
const (
	Unrecognized Kind = iota
	Optional
	TypedText
	Text
	Placeholder
	Informative
	CurrentParameter
	LeftParen
	RightParen
	LeftBracket
	RightBracket
	LeftBrace
	RightBrace
	LeftAngle
	RightAngle
	Comma
	ResultType
	Colon
	SemiColon
	Equal
	HorizontalSpace
	VerticalSpace
)

var kindNames = [...]string{
	Unrecognized:     "Unrecognized",
	Optional:         "Optional",
	TypedText:        "TypedText",
	Text:             "Text",
	Placeholder:      "Placeholder",
	Informative:      "Informative",
	CurrentParameter: "CurrentParameter",
	LeftParen:        "LeftParen",
	RightParen:       "RightParen",
	LeftBracket:      "LeftBracket",
	RightBracket:     "RightBracket",
	LeftBrace:        "LeftBrace",
	RightBrace:       "RightBrace",
	LeftAngle:        "LeftAngle",
	RightAngle:       "RightAngle",
	Comma:            "Comma",
	ResultType:       "ResultType",
	Colon:            "Colon",
	SemiColon:        "SemiColon",
	Equal:            "Equal",
	HorizontalSpace:  "HorizontalSpace",
	VerticalSpace:    "VerticalSpace",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[strings.ToLower(name)] = Kind(k)
	}
	return m
}()

// String returns the analyzer spelling of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[Unrecognized]
	}
	return kindNames[k]
}

// ParseKind resolves a kind name case-insensitively. Unknown names resolve to
// Unrecognized; callers treat such chunks as non-contributing rather than
// failing the whole candidate.
func ParseKind(name string) Kind {
	if k, ok := kindsByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k
	}
	return Unrecognized
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It never fails.
func (k *Kind) UnmarshalText(text []byte) error {
	*k = ParseKind(string(text))
	return nil
}
