package loader

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/oakwood-commons/cxcomplete/internal/chunk"
)

const (
	keyCandidates = "candidates"
	keyKind       = "kind"
	keyBrief      = "brief"
	keyChunks     = "chunks"
	keyText       = "text"
)

// LoadCandidates parses input in any supported format and decodes every
// document into candidates. A document is a single candidate map, a list of
// candidate maps, or a map holding a "candidates" list.
//
// Candidate maps use the keys "kind" (declaration kind), "brief" and
// "chunks". A missing or null "chunks" means the analyzer produced no
// completion string. Each chunk is either a map {kind, text, chunks} or the
// compact string "Kind:text".
func LoadCandidates(input string) ([]chunk.Candidate, error) {
	docs, err := LoadData(input)
	if err != nil {
		return nil, err
	}
	return DecodeCandidates(docs)
}

// LoadCandidatesReader is LoadCandidates over a reader.
func LoadCandidatesReader(r io.Reader) ([]chunk.Candidate, error) {
	docs, err := LoadReader(r)
	if err != nil {
		return nil, err
	}
	return DecodeCandidates(docs)
}

// LoadCandidatesFile is LoadCandidates over a file.
func LoadCandidatesFile(path string) ([]chunk.Candidate, error) {
	docs, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	cands, err := DecodeCandidates(docs)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return cands, nil
}

// DecodeCandidates converts already parsed documents into candidates.
func DecodeCandidates(docs []interface{}) ([]chunk.Candidate, error) {
	var out []chunk.Candidate
	for i, doc := range docs {
		switch v := doc.(type) {
		case []interface{}:
			cands, err := decodeCandidateList(v)
			if err != nil {
				return nil, errors.Wrapf(err, "document %d", i)
			}
			out = append(out, cands...)
		case map[string]interface{}:
			if list, ok := v[keyCandidates]; ok {
				items, isList := list.([]interface{})
				if !isList {
					return nil, errors.WithHint(
						errors.Newf("document %d: %q must be a list, got %T", i, keyCandidates, list),
						"wrap candidates in a list, even when there is only one")
				}
				cands, err := decodeCandidateList(items)
				if err != nil {
					return nil, errors.Wrapf(err, "document %d", i)
				}
				out = append(out, cands...)
				continue
			}
			cand, err := decodeCandidate(v)
			if err != nil {
				return nil, errors.Wrapf(err, "document %d", i)
			}
			out = append(out, cand)
		default:
			return nil, errors.WithHint(
				errors.Newf("document %d: expected a candidate map or list, got %T", i, doc),
				"each document must look like {kind: FunctionDecl, chunks: [...]}")
		}
	}
	return out, nil
}

func decodeCandidateList(items []interface{}) ([]chunk.Candidate, error) {
	out := make([]chunk.Candidate, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]interface{})
		if !ok {
			return nil, errors.WithHintf(
				errors.Newf("candidate %d: expected a map, got %T", i, item),
				"candidate %d should look like {kind: FunctionDecl, chunks: [...]}", i)
		}
		cand, err := decodeCandidate(m)
		if err != nil {
			return nil, errors.Wrapf(err, "candidate %d", i)
		}
		out = append(out, cand)
	}
	return out, nil
}

func decodeCandidate(m map[string]interface{}) (chunk.Candidate, error) {
	cand := chunk.Candidate{
		Cursor: chunk.ParseCursorKind(scalarString(m[keyKind])),
		Brief:  scalarString(m[keyBrief]),
	}
	raw, ok := m[keyChunks]
	if !ok || raw == nil {
		return cand, nil
	}
	chunks, err := decodeChunks(raw)
	if err != nil {
		return cand, err
	}
	cand.Chunks = chunks
	return cand, nil
}

// decodeChunks never returns nil for a present list, so an empty list stays
// distinguishable from an absent completion string.
func decodeChunks(raw interface{}) ([]chunk.Chunk, error) {
	items, ok := raw.([]interface{})
	if !ok {
		return nil, errors.WithHint(
			errors.Newf("%q must be a list, got %T", keyChunks, raw),
			`use chunks: ["TypedText:foo", "LeftParen:("] or a list of {kind, text} maps`)
	}
	out := make([]chunk.Chunk, 0, len(items))
	for i, item := range items {
		c, err := decodeChunk(item)
		if err != nil {
			return nil, errors.Wrapf(err, "chunk %d", i)
		}
		out = append(out, c)
	}
	return out, nil
}

func decodeChunk(item interface{}) (chunk.Chunk, error) {
	switch v := item.(type) {
	case string:
		return chunk.ParseCompact(v), nil
	case map[string]interface{}:
		if _, ok := v[keyKind]; !ok {
			return decodeShorthandChunk(v)
		}
		c := chunk.Chunk{
			Kind: chunk.ParseKind(scalarString(v[keyKind])),
			Text: scalarString(v[keyText]),
		}
		if c.Kind == chunk.Optional {
			return decodeOptionalGroup(c, v[keyChunks])
		}
		return c, nil
	default:
		return chunk.Chunk{}, errors.Newf("expected a map or \"Kind:text\" string, got %T", item)
	}
}

// decodeShorthandChunk accepts {Kind: text}, which is what YAML makes of
// an unquoted "Placeholder: int x". An Optional shorthand holds its group:
// {Optional: [...]}.
func decodeShorthandChunk(m map[string]interface{}) (chunk.Chunk, error) {
	if len(m) != 1 {
		return chunk.Chunk{}, errors.WithHint(
			errors.Newf("chunk map without %q must have exactly one key, got %d", keyKind, len(m)),
			`write {kind: Placeholder, text: "int x"}, {Placeholder: "int x"} or "Placeholder:int x"`)
	}
	for name, val := range m {
		kind := chunk.ParseKind(name)
		if kind == chunk.Unrecognized {
			return chunk.Chunk{}, errors.WithHint(
				errors.Newf("unknown chunk kind %q", name),
				"a {Kind: text} chunk must name a chunk kind such as TypedText or Placeholder")
		}
		if kind == chunk.Optional {
			return decodeOptionalGroup(chunk.Chunk{Kind: kind}, val)
		}
		return chunk.Chunk{Kind: kind, Text: scalarString(val)}, nil
	}
	return chunk.Chunk{}, nil
}

func decodeOptionalGroup(c chunk.Chunk, group interface{}) (chunk.Chunk, error) {
	if group == nil {
		return c, nil
	}
	nested, err := decodeChunks(group)
	if err != nil {
		return c, errors.Wrap(err, "optional group")
	}
	c.Group = nested
	return c, nil
}

// scalarString renders a decoded scalar as text. YAML turns unquoted
// placeholders such as 0 or true into numbers and booleans.
func scalarString(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}
