package bart

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"gobart/pkg/cfl"
)

// Args holds the parameters of one call keyed by parameter name.
//
// A parameter is emitted when its key is present with a non-nil value.
// Numeric zero counts as set; a false bool flag does not. Tuple groups take
// one slice per member key, all of the same length.
type Args map[string]any

// present reports whether v counts as supplied. Typed nil pointers and
// slices are treated like a missing key.
func present(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// deref follows pointers to scalar values, so optional fields declared as
// *int or *float64 can be passed straight through.
func deref(v any) reflect.Value {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	return rv
}

func formatScalar(v any) (string, error) {
	if _, ok := v.(*cfl.Array); ok {
		return "", fmt.Errorf("array where a scalar is expected")
	}
	rv := deref(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), nil
	case reflect.Complex64:
		return formatComplex(rv.Complex(), 32), nil
	case reflect.Complex128:
		return formatComplex(rv.Complex(), 64), nil
	}
	return "", fmt.Errorf("unsupported type %T", v)
}

// formatComplex renders c the way the toolbox parses complex scalars,
// e.g. "1.5-2i". A zero imaginary part is left out.
func formatComplex(c complex128, bits int) string {
	re := strconv.FormatFloat(real(c), 'g', -1, bits)
	if imag(c) == 0 {
		return re
	}
	im := strconv.FormatFloat(imag(c), 'g', -1, bits)
	if !strings.HasPrefix(im, "-") && !strings.HasPrefix(im, "+") {
		im = "+" + im
	}
	return re + im + "i"
}

// formatList renders a slice or array element by element. A single scalar is
// accepted as a list of one.
func formatList(v any) ([]string, error) {
	rv := deref(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		s, err := formatScalar(v)
		if err != nil {
			return nil, err
		}
		return []string{s}, nil
	}
	out := make([]string, rv.Len())
	for i := range out {
		s, err := formatScalar(rv.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = s
	}
	return out, nil
}

func asBool(v any) (bool, error) {
	rv := deref(v)
	if rv.Kind() != reflect.Bool {
		return false, fmt.Errorf("want bool, got %T", v)
	}
	return rv.Bool(), nil
}

func asArray(v any) (*cfl.Array, error) {
	a, ok := v.(*cfl.Array)
	if !ok {
		return nil, fmt.Errorf("want *cfl.Array, got %T", v)
	}
	return a, nil
}

func asArrays(v any) ([]*cfl.Array, error) {
	switch x := v.(type) {
	case *cfl.Array:
		return []*cfl.Array{x}, nil
	case []*cfl.Array:
		for i, a := range x {
			if a == nil {
				return nil, fmt.Errorf("element %d is nil", i)
			}
		}
		return x, nil
	}
	return nil, fmt.Errorf("want []*cfl.Array, got %T", v)
}

func asPath(v any) (string, error) {
	rv := deref(v)
	if rv.Kind() != reflect.String {
		return "", fmt.Errorf("want path string, got %T", v)
	}
	return rv.String(), nil
}

func asPaths(v any) ([]string, error) {
	switch x := v.(type) {
	case string:
		return []string{x}, nil
	case []string:
		return x, nil
	}
	return nil, fmt.Errorf("want []string, got %T", v)
}
