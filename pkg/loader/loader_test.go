package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadData(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLen int
	}{
		{name: "single JSON object", input: `{"kind": "VarDecl"}`, wantLen: 1},
		{name: "single JSON array", input: `[{"kind": "VarDecl"}, {"kind": "FieldDecl"}]`, wantLen: 1},
		{name: "NDJSON", input: "{\"kind\": \"VarDecl\"}\n{\"kind\": \"FieldDecl\"}\n{\"kind\": \"Namespace\"}", wantLen: 3},
		{name: "NDJSON with blank lines", input: "{\"id\": 1}\n\n{\"id\": 2}\n", wantLen: 2},
		{name: "NDJSON with CRLF", input: "{\"id\":1}\r\n{\"id\":2}\r\n{\"id\":3}", wantLen: 3},
		{name: "single YAML", input: "kind: VarDecl\nbrief: a variable", wantLen: 1},
		{name: "multi-document YAML", input: "kind: VarDecl\n---\nkind: FieldDecl\n---\nkind: Namespace", wantLen: 3},
		{name: "TOML section", input: "[[candidates]]\nkind = \"VarDecl\"", wantLen: 1},
		{name: "TOML key-value", input: "kind = \"VarDecl\"\nbrief = \"x\"", wantLen: 1},
		{name: "flow YAML with brace", input: `{kind: VarDecl}`, wantLen: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadData(tt.input)
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestLoadDataEmpty(t *testing.T) {
	_, err := LoadData("  \n ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty input")
}

func TestLoadNDJSONKeepsPlainStrings(t *testing.T) {
	got, err := LoadData("{\"id\": 1}\nnot json\n{\"id\": 2}")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.IsType(t, map[string]interface{}{}, got[0])
	assert.Equal(t, "not json", got[1])
}

func TestIsLikelyTOML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"section header", "[server]\nhost = \"x\"", true},
		{"array of tables", "[[candidates]]\nkind = \"VarDecl\"", true},
		{"key value majority", "a = 1\nb = 2", true},
		{"JSON array", "[1, 2, 3]", false},
		{"YAML", "kind: VarDecl\nchunks:\n  - TypedText:x", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isLikelyTOML(strings.Split(tt.input, "\n")))
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cands.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kind: VarDecl\n"), 0o600))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadReader(t *testing.T) {
	got, err := LoadReader(strings.NewReader(`{"kind": "Namespace"}`))
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
