package chunk

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"TypedText", TypedText},
		{"typedtext", TypedText},
		{" Placeholder ", Placeholder},
		{"SemiColon", SemiColon},
		{"Optional", Optional},
		{"VerticalSpace", VerticalSpace},
		{"Bogus", Unrecognized},
		{"", Unrecognized},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseKind(tt.in))
		})
	}
}

func TestKindStringOutOfRange(t *testing.T) {
	assert.Equal(t, "Unrecognized", Kind(999).String())
	assert.Equal(t, "Unrecognized", Kind(-1).String())
}

func TestParseCursorKind(t *testing.T) {
	assert.Equal(t, FunctionDecl, ParseCursorKind("FunctionDecl"))
	assert.Equal(t, CXXMethod, ParseCursorKind("cxxmethod"))
	assert.Equal(t, CursorUnknown, ParseCursorKind("ObjCInterfaceDecl"))
	assert.Equal(t, "Unknown", CursorKind(500).String())
}

func TestParseCompact(t *testing.T) {
	assert.Equal(t, Chunk{Kind: LeftParen, Text: "("}, ParseCompact("LeftParen:("))
	assert.Equal(t, Chunk{Kind: Colon, Text: ":"}, ParseCompact("Colon::"))
	assert.Equal(t, Chunk{Kind: Placeholder, Text: "int x"}, ParseCompact("Placeholder:int x"))
	assert.Equal(t, Chunk{Kind: RightParen}, ParseCompact("RightParen"))
	assert.Equal(t, Unrecognized, ParseCompact("Nope:x").Kind)
}

func TestCandidateJSONRoundTripKeepsAbsentChunks(t *testing.T) {
	var c Candidate
	require.NoError(t, json.Unmarshal([]byte(`{"kind":"VarDecl","chunks":null}`), &c))
	assert.Equal(t, VarDecl, c.CursorKind())
	assert.Nil(t, c.CompletionChunks())

	require.NoError(t, json.Unmarshal([]byte(`{"kind":"FunctionDecl","chunks":[{"kind":"TypedText","text":"foo"},{"kind":"Optional","chunks":[{"kind":"Placeholder","text":"int y"}]}],"brief":"does foo"}`), &c))
	require.Len(t, c.Chunks, 2)
	assert.Equal(t, TypedText, c.Chunks[0].Kind)
	assert.Equal(t, Optional, c.Chunks[1].Kind)
	require.Len(t, c.Chunks[1].Group, 1)
	assert.Equal(t, "int y", c.Chunks[1].Group[0].Text)
	assert.Equal(t, "does foo", c.BriefComment())
}

func TestKindYAMLUsesNames(t *testing.T) {
	out, err := yaml.Marshal(New(LeftAngle, "<"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "kind: LeftAngle")

	var ch Chunk
	require.NoError(t, yaml.Unmarshal([]byte("kind: Equal\ntext: ' = '\n"), &ch))
	assert.Equal(t, Equal, ch.Kind)
	assert.Equal(t, " = ", ch.Text)
}
