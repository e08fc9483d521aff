package chunk

import "strings"

// Chunk is one labeled piece of a completion string. Text-bearing kinds carry
// Text; an Optional chunk carries its nested group in Group instead.
type Chunk struct {
	Kind  Kind    `json:"kind" yaml:"kind"`
	Text  string  `json:"text,omitempty" yaml:"text,omitempty"`
	Group []Chunk `json:"chunks,omitempty" yaml:"chunks,omitempty"`
}

// New returns a text-bearing chunk.
func New(kind Kind, text string) Chunk {
	return Chunk{Kind: kind, Text: text}
}

// NewOptional returns an Optional chunk wrapping the given group.
func NewOptional(group ...Chunk) Chunk {
	return Chunk{Kind: Optional, Group: group}
}

// ParseCompact parses the compact "Kind:text" notation. A bare "Kind" yields
// an empty text. Only the first colon separates, so "Colon::" is a Colon chunk
// with text ":".
func ParseCompact(s string) Chunk {
	name, text, _ := strings.Cut(s, ":")
	return Chunk{Kind: ParseKind(name), Text: text}
}

// Candidate is one completion result as handed over by the analyzer.
type Candidate struct {
	Cursor CursorKind `json:"kind" yaml:"kind"`
	// Chunks is nil when the analyzer produced no completion string.
	Chunks []Chunk `json:"chunks" yaml:"chunks"`
	Brief  string  `json:"brief,omitempty" yaml:"brief,omitempty"`
}

// CursorKind returns the candidate's declaration kind.
func (c Candidate) CursorKind() CursorKind { return c.Cursor }

// CompletionChunks returns the chunk sequence, or nil when absent.
func (c Candidate) CompletionChunks() []Chunk { return c.Chunks }

// BriefComment returns the documentation summary, possibly empty.
func (c Candidate) BriefComment() string { return c.Brief }
