package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDeduplication(t *testing.T) {
	registry := NewRegistry()

	// Overloads resolved from two sources; the second carries documentation
	recs := []Record{
		{Category: CategoryFunction, DisplayText: "foo(int x)", Annotation: "int", PreviewText: "int foo(int x)\n"},
		{Category: CategoryVariable, DisplayText: "count", Annotation: "size_t"},
		{Category: CategoryFunction, DisplayText: "foo(int x)", Annotation: "int", DocString: "Does foo.", PreviewText: "Does foo.\nint foo(int x)\n"},
		{Category: CategoryFunction, DisplayText: "foo(int x)", Annotation: "long"},
	}

	added := registry.AddAll(recs)
	assert.Equal(t, 3, added)
	assert.Equal(t, 3, registry.Size())

	got := registry.Records()
	require.Len(t, got, 3)
	assert.Equal(t, "foo(int x)", got[0].DisplayText)
	assert.Equal(t, "Does foo.", got[0].DocString, "documentation from the duplicate is kept")
	assert.Equal(t, "Does foo.\nint foo(int x)\n", got[0].PreviewText)
	assert.Equal(t, "count", got[1].DisplayText)
	assert.Equal(t, "long", got[2].Annotation)
}

func TestRegistryKeepsExistingDocumentation(t *testing.T) {
	registry := NewRegistry()
	assert.True(t, registry.Add(Record{DisplayText: "x", DocString: "first", PreviewText: "first\n x\n"}))
	assert.False(t, registry.Add(Record{DisplayText: "x", DocString: "second", PreviewText: "second\n x\n"}))

	got := registry.Records()
	require.Len(t, got, 1)
	assert.Equal(t, "first", got[0].DocString)
}

func TestRegistryContains(t *testing.T) {
	registry := NewRegistry()
	rec := Record{Category: CategoryMacro, DisplayText: "NULL"}
	assert.False(t, registry.Contains(rec))
	registry.Add(rec)
	assert.True(t, registry.Contains(Record{Category: CategoryMacro, DisplayText: "NULL", PreviewText: "different"}))
	assert.False(t, registry.Contains(Record{Category: CategoryVariable, DisplayText: "NULL"}))
}

func TestRegistryRecordsIsACopy(t *testing.T) {
	registry := NewRegistry()
	registry.Add(Record{DisplayText: "a"})
	got := registry.Records()
	got[0].DisplayText = "mutated"
	assert.Equal(t, "a", registry.Records()[0].DisplayText)
}

func TestDedupe(t *testing.T) {
	assert.Empty(t, Dedupe(nil))
	out := Dedupe([]Record{{DisplayText: "a"}, {DisplayText: "b"}, {DisplayText: "a"}})
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].DisplayText)
	assert.Equal(t, "b", out[1].DisplayText)
}
