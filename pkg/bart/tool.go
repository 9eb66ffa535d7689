// Package bart runs the command-line tools of the Berkeley Advanced
// Reconstruction Toolbox as ordinary Go calls.
//
// Every tool is described by an entry in a declarative table. A call maps
// the caller's arguments onto command-line tokens, writes array inputs into
// a private workspace in CFL format, runs the toolbox executable and reads
// the declared outputs back:
//
//	client, err := bart.NewClient(cfg)
//	res, err := client.Run(ctx, "ones", bart.Args{"dims": 2, "sizes": []int{4, 4}})
//	ones := res.First()
package bart

import (
	"fmt"
	"sort"
	"strings"
)

// Kind classifies how a parameter is rendered on the command line.
type Kind int

const (
	// Bool is a flag emitted as its token alone.
	Bool Kind = iota
	// Value is a flag followed by one scalar.
	Value
	// List is a flag followed by its elements joined with ':'.
	List
	// ArrayFlag is a flag followed by the path of an array input.
	ArrayFlag
	// Scalar is a positional scalar.
	Scalar
	// Variadic is a positional list, one token per element.
	Variadic
	// Tuple is a group of positional lists emitted interleaved.
	Tuple
	// Input is a positional array input.
	Input
	// Inputs is a positional list of array inputs.
	Inputs
	// Output is a positional array the tool writes.
	Output
	// Path is a positional filesystem path passed through untouched.
	Path
	// Paths is a list of filesystem paths passed through untouched.
	Paths
)

var kindNames = [...]string{
	Bool:      "bool",
	Value:     "value",
	List:      "list",
	ArrayFlag: "array-flag",
	Scalar:    "scalar",
	Variadic:  "variadic",
	Tuple:     "tuple",
	Input:     "input",
	Inputs:    "inputs",
	Output:    "output",
	Path:      "path",
	Paths:     "paths",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsFlag reports whether parameters of this kind are introduced by a token.
func (k Kind) IsFlag() bool {
	return k <= ArrayFlag
}

// Param describes one parameter of a tool.
type Param struct {
	// Name is the key used in Args. For tuples it joins the member names.
	Name string

	Kind Kind

	// Flag is the command-line token for flag kinds, e.g. "-u" or "--lowmem".
	Flag string

	Doc string

	// Optional parameters may be left out. Flags are always optional.
	Optional bool

	// Members lists the Args keys of a tuple group in emission order.
	Members []string
}

// Keys returns the Args keys this parameter consumes.
func (p Param) Keys() []string {
	if p.Kind == Tuple {
		return p.Members
	}
	return []string{p.Name}
}

// Tool describes a toolbox subcommand.
type Tool struct {
	Name    string
	Summary string
	Params  []Param

	keys map[string]int
}

// Param returns the parameter that consumes the given Args key.
func (t *Tool) Param(key string) (Param, bool) {
	i, ok := t.keys[key]
	if !ok {
		return Param{}, false
	}
	return t.Params[i], true
}

// Flags returns the flag parameters in emission order.
func (t *Tool) Flags() []Param {
	return t.filter(func(p Param) bool { return p.Kind.IsFlag() })
}

// Positionals returns the positional parameters in command-line order.
func (t *Tool) Positionals() []Param {
	return t.filter(func(p Param) bool { return !p.Kind.IsFlag() })
}

// Outputs returns the arrays the tool writes, in declared order.
func (t *Tool) Outputs() []Param {
	return t.filter(func(p Param) bool { return p.Kind == Output })
}

func (t *Tool) filter(keep func(Param) bool) []Param {
	var out []Param
	for _, p := range t.Params {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// Usage renders a synopsis in the toolbox's own notation, e.g.
// "fft [-u] [-i] [-n] bitmask <input> <output>".
func (t *Tool) Usage() string {
	parts := []string{t.Name}
	for _, p := range t.Params {
		parts = append(parts, p.usage())
	}
	return strings.Join(parts, " ")
}

func (p Param) usage() string {
	var s string
	switch p.Kind {
	case Bool:
		s = p.Flag
	case Value, List, ArrayFlag:
		s = p.Flag + " " + p.Name
	case Variadic:
		s = p.Name + "..."
	case Tuple:
		s = strings.Join(p.Members, "1 ") + "1 ..."
	case Input, Output:
		s = "<" + p.Name + ">"
	case Inputs, Paths:
		s = "<" + p.Name + ">..."
	default:
		s = p.Name
	}
	if p.Optional {
		return "[" + s + "]"
	}
	return s
}

// Lookup returns the tool with the given subcommand name.
func Lookup(name string) (*Tool, bool) {
	t, ok := toolIndex[name]
	return t, ok
}

// Tools returns every known tool sorted by name.
func Tools() []*Tool {
	out := make([]*Tool, len(toolTable))
	copy(out, toolTable)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

var toolIndex = indexTools(toolTable)

func indexTools(tools []*Tool) map[string]*Tool {
	idx := make(map[string]*Tool, len(tools))
	for _, t := range tools {
		if _, dup := idx[t.Name]; dup {
			panic("bart: duplicate tool " + t.Name)
		}
		t.keys = make(map[string]int)
		for i, p := range t.Params {
			for _, k := range p.Keys() {
				if _, dup := t.keys[k]; dup {
					panic(fmt.Sprintf("bart: tool %s: duplicate parameter %s", t.Name, k))
				}
				t.keys[k] = i
			}
		}
		idx[t.Name] = t
	}
	return idx
}

// Table constructors.

func boolFlag(token, name, doc string) Param {
	return Param{Name: name, Kind: Bool, Flag: token, Doc: doc, Optional: true}
}

func valueFlag(token, name, doc string) Param {
	return Param{Name: name, Kind: Value, Flag: token, Doc: doc, Optional: true}
}

func listFlag(token, name, doc string) Param {
	return Param{Name: name, Kind: List, Flag: token, Doc: doc, Optional: true}
}

func arrayFlag(token, name, doc string) Param {
	return Param{Name: name, Kind: ArrayFlag, Flag: token, Doc: doc, Optional: true}
}

func scalar(name string) Param {
	return Param{Name: name, Kind: Scalar}
}

func variadic(name string) Param {
	return Param{Name: name, Kind: Variadic}
}

func optVariadic(name string) Param {
	return Param{Name: name, Kind: Variadic, Optional: true}
}

func tuple(members ...string) Param {
	return Param{Name: strings.Join(members, ","), Kind: Tuple, Members: members}
}

func optTuple(members ...string) Param {
	p := tuple(members...)
	p.Optional = true
	return p
}

func input(name string) Param {
	return Param{Name: name, Kind: Input}
}

func optInput(name string) Param {
	return Param{Name: name, Kind: Input, Optional: true}
}

func inputs(name string) Param {
	return Param{Name: name, Kind: Inputs}
}

func output(name string) Param {
	return Param{Name: name, Kind: Output}
}

func optOutput(name string) Param {
	return Param{Name: name, Kind: Output, Optional: true}
}

func path(name string) Param {
	return Param{Name: name, Kind: Path}
}

func paths(name string) Param {
	return Param{Name: name, Kind: Paths}
}
