// Package cfl holds the in-memory array type exchanged with the toolbox and
// the codec for its on-disk format: a text header (<base>.hdr) describing the
// dimensions and a raw payload (<base>.cfl) of little-endian complex64 values
// in column-major order.
package cfl

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrShape is returned when dimensions and data disagree.
	ErrShape = errors.New("cfl: invalid shape")

	// ErrIndex is returned for out-of-range element access.
	ErrIndex = errors.New("cfl: index out of range")
)

// Array is a multi-dimensional complex array.
type Array struct {
	// Dims holds the size of each dimension, first dimension first.
	Dims []int

	// Data holds the elements in column-major order: the first dimension
	// varies fastest, exactly as the toolbox lays them out on disk.
	Data []complex64
}

// New creates a zero-filled array with the given dimensions.
// Calling New without dimensions yields a single-element array.
func New(dims ...int) *Array {
	if len(dims) == 0 {
		dims = []int{1}
	}
	n := 1
	for _, d := range dims {
		if d < 0 {
			d = 0
		}
		n *= d
	}
	return &Array{
		Dims: append([]int(nil), dims...),
		Data: make([]complex64, n),
	}
}

// FromData wraps data with the given dimensions.
// The data slice is used directly, not copied.
func FromData(dims []int, data []complex64) (*Array, error) {
	n, err := elementCount(dims)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: dims %v need %d elements, got %d", ErrShape, dims, n, len(data))
	}
	return &Array{Dims: append([]int(nil), dims...), Data: data}, nil
}

// FromReal builds a complex array with zero imaginary part.
func FromReal(dims []int, values []float64) (*Array, error) {
	data := make([]complex64, len(values))
	for i, v := range values {
		data[i] = complex(float32(v), 0)
	}
	return FromData(dims, data)
}

// Fill creates an array with every element set to v.
func Fill(v complex64, dims ...int) *Array {
	a := New(dims...)
	for i := range a.Data {
		a.Data[i] = v
	}
	return a
}

func elementCount(dims []int) (int, error) {
	if len(dims) == 0 {
		return 0, fmt.Errorf("%w: no dimensions", ErrShape)
	}
	n := 1
	for _, d := range dims {
		if d <= 0 {
			return 0, fmt.Errorf("%w: dimension size %d", ErrShape, d)
		}
		if n > math.MaxInt/d {
			return 0, fmt.Errorf("%w: %v elements overflow", ErrShape, dims)
		}
		n *= d
	}
	return n, nil
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return len(a.Data)
}

// Shape returns a copy of the dimensions.
func (a *Array) Shape() []int {
	return append([]int(nil), a.Dims...)
}

// offset converts a multi-index into a column-major offset.
// Missing trailing indices are treated as zero.
func (a *Array) offset(idx []int) (int, error) {
	if len(idx) > len(a.Dims) {
		for _, v := range idx[len(a.Dims):] {
			if v != 0 {
				return 0, fmt.Errorf("%w: %v for dims %v", ErrIndex, idx, a.Dims)
			}
		}
		idx = idx[:len(a.Dims)]
	}
	off, stride := 0, 1
	for i, v := range idx {
		if v < 0 || v >= a.Dims[i] {
			return 0, fmt.Errorf("%w: %v for dims %v", ErrIndex, idx, a.Dims)
		}
		off += v * stride
		stride *= a.Dims[i]
	}
	return off, nil
}

// At returns the element at the given multi-index. It panics when the index
// is out of range, like a slice access would.
func (a *Array) At(idx ...int) complex64 {
	off, err := a.offset(idx)
	if err != nil {
		panic(err)
	}
	return a.Data[off]
}

// Set stores v at the given multi-index.
func (a *Array) Set(v complex64, idx ...int) {
	off, err := a.offset(idx)
	if err != nil {
		panic(err)
	}
	a.Data[off] = v
}

// Squeeze returns a view of the array with singleton dimensions removed.
// At least one dimension is always kept.
func (a *Array) Squeeze() *Array {
	dims := make([]int, 0, len(a.Dims))
	for _, d := range a.Dims {
		if d != 1 {
			dims = append(dims, d)
		}
	}
	if len(dims) == 0 {
		dims = []int{1}
	}
	return &Array{Dims: dims, Data: a.Data}
}

// Equal reports whether both arrays have the same shape, ignoring trailing
// singleton dimensions, and bit-identical values.
func (a *Array) Equal(b *Array) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !sameShape(a.Dims, b.Dims) || len(a.Data) != len(b.Data) {
		return false
	}
	for i := range a.Data {
		x, y := a.Data[i], b.Data[i]
		if math.Float32bits(real(x)) != math.Float32bits(real(y)) ||
			math.Float32bits(imag(x)) != math.Float32bits(imag(y)) {
			return false
		}
	}
	return true
}

// SameShape reports whether two arrays have matching dimensions once trailing
// singleton dimensions are ignored.
func SameShape(a, b *Array) bool {
	return sameShape(a.Dims, b.Dims)
}

func sameShape(x, y []int) bool {
	x, y = trimTrailing(x), trimTrailing(y)
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

func trimTrailing(dims []int) []int {
	n := len(dims)
	for n > 1 && dims[n-1] == 1 {
		n--
	}
	return dims[:n]
}

// Magnitude returns |x| for every element.
func (a *Array) Magnitude() []float64 {
	out := make([]float64, len(a.Data))
	for i, v := range a.Data {
		out[i] = cmplx.Abs(complex128(v))
	}
	return out
}

// Real returns the real parts.
func (a *Array) Real() []float64 {
	out := make([]float64, len(a.Data))
	for i, v := range a.Data {
		out[i] = float64(real(v))
	}
	return out
}

// Imag returns the imaginary parts.
func (a *Array) Imag() []float64 {
	out := make([]float64, len(a.Data))
	for i, v := range a.Data {
		out[i] = float64(imag(v))
	}
	return out
}

// CDense copies an array with at most two non-singleton dimensions into a
// gonum complex matrix, rows along the first dimension.
func (a *Array) CDense() (*mat.CDense, error) {
	sq := a.Squeeze()
	rows, cols := sq.Dims[0], 1
	switch len(sq.Dims) {
	case 1:
	case 2:
		cols = sq.Dims[1]
	default:
		return nil, fmt.Errorf("%w: %d non-singleton dimensions, want at most 2", ErrShape, len(sq.Dims))
	}
	m := mat.NewCDense(rows, cols, nil)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			m.Set(r, c, complex128(sq.Data[r+c*rows]))
		}
	}
	return m, nil
}

// FromCDense copies a gonum complex matrix into a two-dimensional array.
func FromCDense(m *mat.CDense) *Array {
	rows, cols := m.Dims()
	a := New(rows, cols)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			a.Data[r+c*rows] = complex64(m.At(r, c))
		}
	}
	return a
}

// String renders a short description, e.g. "cfl.Array[4x4]".
func (a *Array) String() string {
	parts := make([]string, len(a.Dims))
	for i, d := range a.Dims {
		parts[i] = fmt.Sprint(d)
	}
	return "cfl.Array[" + strings.Join(parts, "x") + "]"
}
