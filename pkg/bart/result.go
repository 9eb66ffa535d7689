package bart

import (
	"strings"

	"gobart/pkg/cfl"
)

// Result holds what a call produced.
type Result struct {
	Invocation *Invocation

	// Stdout is the tool's captured standard output.
	Stdout []byte

	names   []string
	outputs []*cfl.Array
}

// Outputs returns the output arrays in the tool's declared order. Optional
// outputs the tool did not write are nil.
func (r *Result) Outputs() []*cfl.Array {
	out := make([]*cfl.Array, len(r.outputs))
	copy(out, r.outputs)
	return out
}

// Output returns the named output, or nil.
func (r *Result) Output(name string) *cfl.Array {
	for i, n := range r.names {
		if n == name {
			return r.outputs[i]
		}
	}
	return nil
}

// First returns the first declared output, or nil for tools without outputs.
func (r *Result) First() *cfl.Array {
	if len(r.outputs) == 0 {
		return nil
	}
	return r.outputs[0]
}

// Text returns stdout without surrounding whitespace.
func (r *Result) Text() string {
	return strings.TrimSpace(string(r.Stdout))
}
