package bart

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"gobart/pkg/cfl"
)

// File names one array passed through the workspace.
type File struct {
	Name     string
	Path     string
	Optional bool
}

// Invocation is a fully assembled command line.
type Invocation struct {
	ID   string
	Tool string

	// Argv starts with the executable, then the subcommand.
	Argv []string

	// Inputs are the arrays written before the run.
	Inputs []File

	// Outputs are read back after the run, in the tool's declared order.
	Outputs []File
}

// String renders the command line with shell quoting, ready to paste into
// a terminal.
func (inv *Invocation) String() string {
	parts := make([]string, len(inv.Argv))
	for i, a := range inv.Argv {
		parts[i] = shellQuote(a)
	}
	return strings.Join(parts, " ")
}

func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	safe := true
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' ||
			strings.ContainsRune("-_./:=+,@%", r)) {
			safe = false
			break
		}
	}
	if safe {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// stager places arrays for a call. The live implementation is a Workspace;
// dry runs only compute paths.
type stager interface {
	Path(name string) string
	WriteInput(name string, a *cfl.Array) (string, error)
}

// Build assembles the command line for toolName as exe would run it,
// without touching the filesystem. Array paths point into a workspace under
// the system temporary directory that is never created.
func Build(exe, toolName string, args Args) (*Invocation, error) {
	tool, ok := Lookup(toolName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, toolName)
	}
	id := uuid.NewString()
	return build(exe, tool, args, id, newPlaceholder("", id))
}

// build maps args onto the command line of tool: flags in table order, then
// positionals in table order.
func build(exe string, tool *Tool, args Args, id string, st stager) (*Invocation, error) {
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, ok := tool.Param(k); !ok {
			return nil, fmt.Errorf("%w: %s has no parameter %q", ErrUnknownParam, tool.Name, k)
		}
	}

	b := &builder{
		tool: tool,
		args: args,
		st:   st,
		inv: &Invocation{
			ID:   id,
			Tool: tool.Name,
			Argv: []string{exe, tool.Name},
		},
	}
	for _, p := range tool.Flags() {
		if err := b.flag(p); err != nil {
			return nil, err
		}
	}
	for _, p := range tool.Positionals() {
		if err := b.positional(p); err != nil {
			return nil, err
		}
	}
	return b.inv, nil
}

type builder struct {
	tool *Tool
	args Args
	st   stager
	inv  *Invocation
}

func (b *builder) emit(tokens ...string) {
	b.inv.Argv = append(b.inv.Argv, tokens...)
}

func (b *builder) badValue(p Param, err error) error {
	return fmt.Errorf("%w: %s %s: %v", ErrBadValue, b.tool.Name, p.Name, err)
}

func (b *builder) lookup(key string) (any, bool) {
	v, ok := b.args[key]
	return v, ok && present(v)
}

func (b *builder) stage(name string, a *cfl.Array) (string, error) {
	path, err := b.st.WriteInput(name, a)
	if err != nil {
		return "", fmt.Errorf("bart %s: write input %s: %w", b.tool.Name, name, err)
	}
	b.inv.Inputs = append(b.inv.Inputs, File{Name: name, Path: path})
	return path, nil
}

func (b *builder) flag(p Param) error {
	v, ok := b.lookup(p.Name)
	if !ok {
		return nil
	}

	switch p.Kind {
	case Bool:
		set, err := asBool(v)
		if err != nil {
			return b.badValue(p, err)
		}
		if set {
			b.emit(p.Flag)
		}
	case Value:
		s, err := formatScalar(v)
		if err != nil {
			return b.badValue(p, err)
		}
		b.emit(p.Flag, s)
	case List:
		elems, err := formatList(v)
		if err != nil {
			return b.badValue(p, err)
		}
		b.emit(p.Flag, strings.Join(elems, ":"))
	case ArrayFlag:
		a, err := asArray(v)
		if err != nil {
			return b.badValue(p, err)
		}
		path, err := b.stage(p.Name, a)
		if err != nil {
			return err
		}
		b.emit(p.Flag, path)
	}
	return nil
}

func (b *builder) positional(p Param) error {
	if p.Kind == Output {
		if _, ok := b.args[p.Name]; ok {
			return b.badValue(p, fmt.Errorf("output is produced by the tool"))
		}
		path := b.st.Path(p.Name)
		b.inv.Outputs = append(b.inv.Outputs, File{Name: p.Name, Path: path, Optional: p.Optional})
		b.emit(path)
		return nil
	}
	if p.Kind == Tuple {
		return b.tuple(p)
	}

	v, ok := b.lookup(p.Name)
	if !ok {
		if p.Optional {
			return nil
		}
		return fmt.Errorf("%w: %s %s", ErrMissingParam, b.tool.Name, p.Name)
	}

	switch p.Kind {
	case Scalar:
		s, err := formatScalar(v)
		if err != nil {
			return b.badValue(p, err)
		}
		b.emit(s)
	case Variadic:
		elems, err := formatList(v)
		if err != nil {
			return b.badValue(p, err)
		}
		b.emit(elems...)
	case Input:
		a, err := asArray(v)
		if err != nil {
			return b.badValue(p, err)
		}
		path, err := b.stage(p.Name, a)
		if err != nil {
			return err
		}
		b.emit(path)
	case Inputs:
		arrays, err := asArrays(v)
		if err != nil {
			return b.badValue(p, err)
		}
		for i, a := range arrays {
			path, err := b.stage(fmt.Sprintf("%s_%d", p.Name, i), a)
			if err != nil {
				return err
			}
			b.emit(path)
		}
	case Path:
		s, err := asPath(v)
		if err != nil {
			return b.badValue(p, err)
		}
		b.emit(s)
	case Paths:
		s, err := asPaths(v)
		if err != nil {
			return b.badValue(p, err)
		}
		b.emit(s...)
	}
	return nil
}

// tuple interleaves the member lists: a1 b1 a2 b2 ...
func (b *builder) tuple(p Param) error {
	cols := make([][]string, len(p.Members))
	supplied := 0
	for i, m := range p.Members {
		v, ok := b.lookup(m)
		if !ok {
			continue
		}
		supplied++
		elems, err := formatList(v)
		if err != nil {
			return fmt.Errorf("%w: %s %s: %v", ErrBadValue, b.tool.Name, m, err)
		}
		cols[i] = elems
	}

	if supplied == 0 && p.Optional {
		return nil
	}
	for i, m := range p.Members {
		if cols[i] == nil {
			return fmt.Errorf("%w: %s %s", ErrMissingParam, b.tool.Name, m)
		}
	}

	n := len(cols[0])
	for i, c := range cols[1:] {
		if len(c) != n {
			return fmt.Errorf("%w: %s: %s has %d values, %s has %d",
				ErrTupleLength, b.tool.Name, p.Members[0], n, p.Members[i+1], len(c))
		}
	}
	for row := 0; row < n; row++ {
		for _, c := range cols {
			b.emit(c[row])
		}
	}
	return nil
}
