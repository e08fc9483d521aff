// Package intellisense turns the chunked completion strings of a C-family
// semantic analyzer into the text an editor completion menu shows.
//
// # Basic Usage
//
// Describe a candidate and build its record:
//
//	cand := intellisense.Candidate{
//		Cursor: intellisense.FunctionDecl,
//		Chunks: []intellisense.Chunk{
//			intellisense.NewChunk(intellisense.TypedText, "foo"),
//			intellisense.NewChunk(intellisense.LeftParen, "("),
//			intellisense.NewChunk(intellisense.Placeholder, "int x"),
//			intellisense.NewChunk(intellisense.RightParen, ")"),
//		},
//	}
//	rec := intellisense.NewBuilder().Build(cand)
//	fmt.Println(rec.DisplayText) // foo(int x)
//
// # Extra Space
//
// EnableExtraSpace pads parameter lists ("foo( int x )") for every Builder
// created afterwards. Builders capture the setting when they are created, so
// toggling it never changes records produced by an existing Builder.
package intellisense

import (
	"sync/atomic"

	"github.com/go-logr/logr"

	"github.com/oakwood-commons/cxcomplete/internal/chunk"
	"github.com/oakwood-commons/cxcomplete/internal/completion"
)

// Record holds the rendered strings for one candidate.
type Record = completion.Record

// Category is the coarse kind of entity a completion refers to.
type Category = completion.Category

// Source is the input contract: anything exposing a declaration kind, an
// optional chunk sequence and a documentation summary.
type Source = completion.Source

// Builder renders Sources into Records.
type Builder = completion.Builder

// Candidate is the plain-data Source implementation.
type Candidate = chunk.Candidate

// Chunk is one labeled piece of a completion string.
type Chunk = chunk.Chunk

// ChunkKind identifies what a chunk represents.
type ChunkKind = chunk.Kind

// CursorKind is a candidate's declaration kind.
type CursorKind = chunk.CursorKind

// Chunk kinds
const (
	Optional         = chunk.Optional
	TypedText        = chunk.TypedText
	Text             = chunk.Text
	Placeholder      = chunk.Placeholder
	Informative      = chunk.Informative
	CurrentParameter = chunk.CurrentParameter
	LeftParen        = chunk.LeftParen
	RightParen       = chunk.RightParen
	LeftBracket      = chunk.LeftBracket
	RightBracket     = chunk.RightBracket
	LeftBrace        = chunk.LeftBrace
	RightBrace       = chunk.RightBrace
	LeftAngle        = chunk.LeftAngle
	RightAngle       = chunk.RightAngle
	Comma            = chunk.Comma
	ResultType       = chunk.ResultType
	Colon            = chunk.Colon
	SemiColon        = chunk.SemiColon
	Equal            = chunk.Equal
	HorizontalSpace  = chunk.HorizontalSpace
	VerticalSpace    = chunk.VerticalSpace
)

// Declaration kinds most callers need; the full set lives in CursorKind's
// parser (ParseCursorKind).
const (
	StructDecl      = chunk.StructDecl
	ClassDecl       = chunk.ClassDecl
	EnumDecl        = chunk.EnumDecl
	FieldDecl       = chunk.FieldDecl
	FunctionDecl    = chunk.FunctionDecl
	CXXMethod       = chunk.CXXMethod
	VarDecl         = chunk.VarDecl
	ParmDecl        = chunk.ParmDecl
	TypedefDecl     = chunk.TypedefDecl
	Namespace       = chunk.Namespace
	MacroDefinition = chunk.MacroDefinition
)

// Categories
const (
	CategoryStruct    = completion.CategoryStruct
	CategoryClass     = completion.CategoryClass
	CategoryEnum      = completion.CategoryEnum
	CategoryType      = completion.CategoryType
	CategoryMember    = completion.CategoryMember
	CategoryFunction  = completion.CategoryFunction
	CategoryVariable  = completion.CategoryVariable
	CategoryMacro     = completion.CategoryMacro
	CategoryParameter = completion.CategoryParameter
	CategoryNamespace = completion.CategoryNamespace
	CategoryUnknown   = completion.CategoryUnknown
)

var extraSpace atomic.Bool

// EnableExtraSpace makes builders created from now on pad parameter lists.
func EnableExtraSpace() { extraSpace.Store(true) }

// DisableExtraSpace restores the default, unpadded parameter lists.
func DisableExtraSpace() { extraSpace.Store(false) }

// ExtraSpaceEnabled reports the current global setting.
func ExtraSpaceEnabled() bool { return extraSpace.Load() }

// NewBuilder returns a Builder that captures the current extra-space setting.
func NewBuilder() *Builder {
	return completion.NewBuilder(completion.Options{ExtraSpace: extraSpace.Load()})
}

// NewBuilderWithLogger is NewBuilder with a logger for V(1) diagnostics.
func NewBuilderWithLogger(log logr.Logger) *Builder {
	return completion.NewBuilder(completion.Options{
		ExtraSpace: extraSpace.Load(),
		Logger:     log,
	})
}

// Build renders src with a fresh Builder using the current global setting.
func Build(src Source) Record {
	return NewBuilder().Build(src)
}

// NewChunk returns a text-bearing chunk.
func NewChunk(kind ChunkKind, text string) Chunk {
	return chunk.New(kind, text)
}

// NewOptionalChunk returns an Optional chunk wrapping group.
func NewOptionalChunk(group ...Chunk) Chunk {
	return chunk.NewOptional(group...)
}

// ParseCursorKind resolves a declaration kind by name.
func ParseCursorKind(name string) CursorKind {
	return chunk.ParseCursorKind(name)
}

// Dedupe drops records equal (same category, display text and annotation)
// to an earlier one, keeping first-seen order.
func Dedupe(recs []Record) []Record {
	return completion.Dedupe(recs)
}
