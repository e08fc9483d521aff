package cmd

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/oakwood-commons/cxcomplete/internal/completion"
	"github.com/oakwood-commons/cxcomplete/internal/config"
	"github.com/oakwood-commons/cxcomplete/internal/formatter"
	"github.com/oakwood-commons/cxcomplete/internal/lsp"
	"github.com/oakwood-commons/cxcomplete/pkg/settings"
)

// writeRecords prints records in run.OutputFormat.
func writeRecords(w io.Writer, records []completion.Record, run *settings.Run) error {
	if records == nil {
		records = []completion.Record{}
	}
	plain := run.NoColor || !formatter.IsTerminal()

	var (
		out string
		err error
	)
	switch run.OutputFormat {
	case "menu":
		out = formatter.RenderMenu(records, formatter.MenuOptions{NoColor: plain, Width: run.TerminalWidth})
	case "table":
		out = formatter.RenderTable(records, formatter.TableOptions{NoColor: plain, Width: run.TerminalWidth})
	case "preview":
		out = formatter.RenderPreview(records)
	case "tree":
		out = formatter.RenderTree(records)
	case "csv":
		out, err = formatter.RenderCSV(records)
	case "yaml":
		out, err = formatter.FormatYAML(records, formatter.YAMLFormatOptions{LiteralBlockStrings: true})
	case "json":
		out, err = formatJSON(records)
	case "toml":
		out, err = formatTOML(map[string]any{"records": records})
	case "lsp":
		out, err = formatJSON(lsp.ToCompletionList(records, lsp.Options{Snippets: run.Snippets}))
	case "raw":
		var b strings.Builder
		for _, rec := range records {
			b.WriteString(rec.InsertText)
			b.WriteString("\n")
		}
		out = b.String()
	default:
		return fmt.Errorf("unknown output format %q", run.OutputFormat)
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// writeValue prints the result of an expression. Only json, toml and raw
// differ from the yaml used for everything else, since the record-specific
// layouts do not apply to arbitrary values.
func writeValue(w io.Writer, v any, format string) error {
	var (
		out string
		err error
	)
	switch format {
	case "json", "lsp":
		out, err = formatJSON(v)
	case "toml":
		m, ok := v.(map[string]any)
		if !ok {
			m = map[string]any{"result": v}
		}
		out, err = formatTOML(m)
	case "raw":
		out = formatRaw(v)
	default:
		out, err = formatter.FormatYAML(v, formatter.YAMLFormatOptions{LiteralBlockStrings: true})
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func formatJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}
	return string(data) + "\n", nil
}

func formatTOML(v any) (string, error) {
	data, err := toml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode toml: %w", err)
	}
	return string(data), nil
}

// formatRaw prints scalars bare and lists one element per line.
func formatRaw(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case []any:
		var b strings.Builder
		for _, item := range t {
			b.WriteString(formatRaw(item))
		}
		return b.String()
	case string:
		return t + "\n"
	default:
		return fmt.Sprint(t) + "\n"
	}
}

// tableTheme maps the configured palette onto formatter colors. Unset
// entries stay nil so the formatter keeps its defaults.
func tableTheme(c config.ColorsConfig) formatter.TableColors {
	return formatter.TableColors{
		HeaderFG:       colorOrNil(c.Header),
		HeaderBG:       colorOrNil(c.HeaderBackground),
		LabelColor:     colorOrNil(c.Label),
		ParamColor:     colorOrNil(c.Param),
		KindColor:      colorOrNil(c.Kind),
		SeparatorColor: colorOrNil(c.Separator),
	}
}

func colorOrNil(s string) color.Color {
	if s == "" {
		return nil
	}
	return lipgloss.Color(s)
}
