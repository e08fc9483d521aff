package completion

import (
	"github.com/cespare/xxhash/v2"
)

// Record holds the strings a completion UI needs for one candidate.
//
// The menu typically looks like this:
//
//	[DisplayText]  [Category]  [Annotation]
//
// with PreviewText shown in a separate preview window when enabled.
type Record struct {
	Category Category `json:"category" yaml:"category" toml:"category"`
	// InsertText is what goes into the buffer. Placeholders keep their
	// delimiters so the UI can turn them into tab stops.
	InsertText string `json:"insertText" yaml:"insertText" toml:"insertText"`
	// DisplayText is the label: the call text plus any informative chunks,
	// with placeholder delimiters and "__" removed.
	DisplayText string `json:"displayText" yaml:"displayText" toml:"displayText"`
	// Annotation is the result type, if the analyzer reported one.
	Annotation  string `json:"annotation" yaml:"annotation" toml:"annotation"`
	PreviewText string `json:"previewText" yaml:"previewText" toml:"previewText"`
	DocString   string `json:"docString" yaml:"docString" toml:"docString"`
	DedupKey    string `json:"dedupKey" yaml:"dedupKey" toml:"dedupKey"`
}

// Equal reports whether two records describe the same completion. Preview
// text and documentation do not count: one source may simply carry richer
// docs than another.
func (r Record) Equal(other Record) bool {
	return r.Category == other.Category &&
		r.DisplayText == other.DisplayText &&
		r.Annotation == other.Annotation
}

// Fingerprint hashes exactly the fields Equal compares, so equal records
// always share a fingerprint.
func (r Record) Fingerprint() uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(r.Category.String())
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(r.DisplayText)
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(r.Annotation)
	return d.Sum64()
}

// IsEmpty reports whether every text field is empty, as happens for
// candidates without a completion string.
func (r Record) IsEmpty() bool {
	return r.InsertText == "" && r.DisplayText == "" && r.Annotation == "" &&
		r.PreviewText == "" && r.DocString == "" && r.DedupKey == ""
}
