package cli

import (
	"fmt"
	"strconv"
	"strings"

	"gobart/pkg/bart"
	"gobart/pkg/cfl"
)

// parseArgs turns key=value words into call parameters. Array parameters
// take "@base", the CFL base path of a file on disk; list-like parameters
// take comma-separated values. A bare key sets a boolean flag.
func parseArgs(tool *bart.Tool, words []string) (bart.Args, error) {
	args := bart.Args{}
	for _, word := range words {
		key, val, hasVal := strings.Cut(word, "=")
		p, ok := tool.Param(key)
		if !ok {
			return nil, fmt.Errorf("%w: %s has no parameter %q", bart.ErrUnknownParam, tool.Name, key)
		}
		if _, dup := args[key]; dup {
			return nil, fmt.Errorf("%w: %s given twice", bart.ErrBadValue, key)
		}
		v, err := parseValue(p, val, hasVal)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %s: %v", bart.ErrBadValue, tool.Name, key, err)
		}
		args[key] = v
	}
	return args, nil
}

func parseValue(p bart.Param, val string, hasVal bool) (any, error) {
	if p.Kind == bart.Bool {
		if !hasVal {
			return true, nil
		}
		return strconv.ParseBool(val)
	}
	if !hasVal {
		return nil, fmt.Errorf("missing value")
	}

	switch p.Kind {
	case bart.List, bart.Variadic, bart.Tuple:
		return splitList(val), nil
	case bart.ArrayFlag, bart.Input:
		return readArray(val)
	case bart.Inputs:
		var arrays []*cfl.Array
		for _, ref := range splitList(val) {
			a, err := readArray(ref)
			if err != nil {
				return nil, err
			}
			arrays = append(arrays, a)
		}
		return arrays, nil
	case bart.Paths:
		return splitList(val), nil
	}
	return val, nil
}

func splitList(val string) []string {
	parts := strings.Split(val, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func readArray(ref string) (*cfl.Array, error) {
	base, ok := strings.CutPrefix(ref, "@")
	if !ok || base == "" {
		return nil, fmt.Errorf("array values are given as @path, got %q", ref)
	}
	a, err := cfl.ReadCFL(base)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// parseInts parses a comma-separated list such as "0,1".
func parseInts(val string) ([]int, error) {
	var out []int
	for _, f := range splitList(val) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", f)
		}
		out = append(out, n)
	}
	return out, nil
}

// parsePositions parses fixed indices such as "2=3,10=0".
func parsePositions(vals []string) (map[int]int, error) {
	pos := make(map[int]int)
	for _, v := range vals {
		for _, f := range splitList(v) {
			ds, ps, ok := strings.Cut(f, "=")
			if !ok {
				return nil, fmt.Errorf("invalid position %q, want dim=index", f)
			}
			d, err := strconv.Atoi(ds)
			if err != nil {
				return nil, fmt.Errorf("invalid dimension %q", ds)
			}
			p, err := strconv.Atoi(ps)
			if err != nil {
				return nil, fmt.Errorf("invalid index %q", ps)
			}
			pos[d] = p
		}
	}
	return pos, nil
}
