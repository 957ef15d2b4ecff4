package dump

import (
	"strings"

	"github.com/google/cel-go/cel"
)

// recordFilter wraps a compiled CEL program evaluated once per record.
// When disabled, Match always returns true.
type recordFilter struct {
	prog    cel.Program
	enabled bool
}

// newRecordFilter compiles expr against the record variables. An empty or
// all-whitespace expression yields a disabled filter.
func newRecordFilter(expr string) (recordFilter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return recordFilter{enabled: false}, nil
	}
	env, err := cel.NewEnv(
		cel.Variable("name", cel.StringType),
		cel.Variable("size", cel.IntType),
		cel.Variable("index", cel.IntType),
	)
	if err != nil {
		return recordFilter{}, err
	}
	ast, iss := env.Parse(expr)
	if iss != nil && iss.Err() != nil {
		return recordFilter{}, iss.Err()
	}
	checked, iss2 := env.Check(ast)
	if iss2 != nil && iss2.Err() != nil {
		return recordFilter{}, iss2.Err()
	}
	prog, err := env.Program(checked)
	if err != nil {
		return recordFilter{}, err
	}
	return recordFilter{prog: prog, enabled: true}, nil
}

// Match evaluates the expression for one record. Evaluation errors reject
// the record.
func (f recordFilter) Match(name string, size uint32, index int) bool {
	if !f.enabled {
		return true
	}
	out, _, err := f.prog.Eval(map[string]any{
		"name":  name,
		"size":  int64(size),
		"index": int64(index),
	})
	if err != nil {
		return false
	}
	b, ok := out.Value().(bool)
	return ok && b
}
