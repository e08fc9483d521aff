package formatter

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLFormatOptions control YAML rendering.
type YAMLFormatOptions struct {
	Indent int
	// LiteralBlockStrings emits multi-line strings such as previewText as
	// "|" blocks instead of quoted strings full of \n.
	LiteralBlockStrings bool
}

// FormatYAML renders v to YAML using the provided options.
func FormatYAML(v any, opts YAMLFormatOptions) (string, error) {
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return "", err
	}
	if opts.LiteralBlockStrings {
		applyLiteralStyle(&node)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	indent := opts.Indent
	if indent <= 0 {
		indent = 2
	}
	enc.SetIndent(indent)
	if err := enc.Encode(&node); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func applyLiteralStyle(n *yaml.Node) {
	if n == nil {
		return
	}
	if n.Kind == yaml.ScalarNode && n.Tag == "!!str" && strings.Contains(n.Value, "\n") {
		if literalSafe(n.Value) {
			n.Style = yaml.LiteralStyle
		} else {
			n.Style = yaml.DoubleQuotedStyle
		}
	}
	for _, c := range n.Content {
		applyLiteralStyle(c)
	}
}

// literalSafe reports whether a multi-line s can be written as a "|" block.
// yaml.v3 emits an unparsable block when the first line starts with
// whitespace, as the preview of a record without an annotation does
// (" count\n"); those are double-quoted instead.
func literalSafe(s string) bool {
	return !strings.HasPrefix(s, " ") && !strings.HasPrefix(s, "\t")
}
