// Package cel projects rendered records through a CEL expression, for
// example `_.map(r, r.displayText)` or
// `_.filter(r, r.category == "function")`.
package cel

import (
	"encoding/json"
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	celext "github.com/google/cel-go/ext"

	"github.com/oakwood-commons/cxcomplete/internal/completion"
)

// Evaluator compiles and evaluates CEL expressions.
type Evaluator struct {
	env *cel.Env
}

// Program is a compiled expression, reusable across inputs.
type Program struct {
	expr string
	prg  cel.Program
}

// NewEvaluator creates an evaluator with the standard library plus the
// strings, lists and math extensions. The input is bound to "_".
func NewEvaluator() (*Evaluator, error) {
	env, err := cel.NewEnv(
		cel.Variable("_", cel.DynType),
		celext.Strings(),
		celext.Lists(),
		celext.Math(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	return &Evaluator{env: env}, nil
}

// Compile parses and checks expr. The CLI calls it before any input is
// read so a typo fails fast.
func (e *Evaluator) Compile(expr string) (*Program, error) {
	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compilation error: %w", issues.Err())
	}
	prg, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}
	return &Program{expr: expr, prg: prg}, nil
}

// Evaluate compiles expr and runs it against data.
func (e *Evaluator) Evaluate(expr string, data any) (any, error) {
	p, err := e.Compile(expr)
	if err != nil {
		return nil, err
	}
	return p.Eval(data)
}

// Eval runs the program with data bound to "_" and converts the result
// back to Go values.
func (p *Program) Eval(data any) (any, error) {
	result, _, err := p.prg.Eval(map[string]any{"_": data})
	if err != nil {
		return nil, fmt.Errorf("eval error in %q: %w", p.expr, err)
	}
	return ToGo(result), nil
}

// EvalRecords runs the program over records, each exposed as a map keyed
// by its JSON field names.
func (p *Program) EvalRecords(records []completion.Record) (any, error) {
	data, err := RecordsToData(records)
	if err != nil {
		return nil, err
	}
	return p.Eval(data)
}

// RecordsToData converts records into the list-of-maps shape CEL expects.
// Going through JSON keeps the field names identical to the json output.
func RecordsToData(records []completion.Record) ([]any, error) {
	raw, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}
	var data []any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	if data == nil {
		data = []any{}
	}
	return data, nil
}

// ToGo converts CEL values to Go native types recursively.
func ToGo(val ref.Val) any {
	if val == nil {
		return nil
	}

	switch v := val.(type) {
	case types.Bool:
		return bool(v)
	case types.Int:
		return int64(v)
	case types.Uint:
		return uint64(v)
	case types.Double:
		return float64(v)
	case types.String:
		return string(v)
	case types.Bytes:
		return []byte(v)
	case types.Null:
		return nil
	}

	valuer, ok := val.(interface{ Value() any })
	if !ok {
		return val
	}
	switch inner := valuer.Value().(type) {
	case []ref.Val:
		out := make([]any, len(inner))
		for i, elem := range inner {
			out[i] = ToGo(elem)
		}
		return out
	case []any:
		out := make([]any, len(inner))
		for i, elem := range inner {
			out[i] = convertValue(elem)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(inner))
		for k, v := range inner {
			out[k] = convertValue(v)
		}
		return out
	case map[ref.Val]ref.Val:
		out := make(map[string]any, len(inner))
		for k, v := range inner {
			out[fmt.Sprint(ToGo(k))] = ToGo(v)
		}
		return out
	default:
		return inner
	}
}

// convertValue handles elements of native Go collections that CEL hands
// back unchanged, which may still hold ref.Val values.
func convertValue(v any) any {
	switch t := v.(type) {
	case ref.Val:
		return ToGo(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, inner := range t {
			out[k] = convertValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, inner := range t {
			out[i] = convertValue(inner)
		}
		return out
	default:
		return v
	}
}
