package cfl

import (
	"errors"
	"math"
	"testing"
)

// TestColumnMajor verifies that the first index varies fastest
func TestColumnMajor(t *testing.T) {
	a := New(2, 3)
	a.Set(5, 1, 0)
	a.Set(7, 0, 2)

	if a.Data[1] != 5 {
		t.Errorf("Expected Data[1] = 5, got %v", a.Data[1])
	}
	if a.Data[4] != 7 {
		t.Errorf("Expected Data[4] = 7, got %v", a.Data[4])
	}
	if a.At(1, 0) != 5 || a.At(0, 2) != 7 {
		t.Errorf("At did not return stored values")
	}
	// trailing zero indices address the same element
	if a.At(0, 2, 0, 0) != 7 {
		t.Errorf("Expected trailing zero indices to be accepted")
	}
}

func TestAtOutOfRange(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected panic")
		}
		if err, ok := r.(error); !ok || !errors.Is(err, ErrIndex) {
			t.Errorf("Expected ErrIndex panic, got %v", r)
		}
	}()
	New(2, 2).At(2, 0)
}

func TestFromData(t *testing.T) {
	if _, err := FromData([]int{2, 2}, make([]complex64, 4)); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if _, err := FromData([]int{2, 2}, make([]complex64, 5)); !errors.Is(err, ErrShape) {
		t.Errorf("Expected ErrShape for length mismatch, got %v", err)
	}
	if _, err := FromData([]int{2, 0}, nil); !errors.Is(err, ErrShape) {
		t.Errorf("Expected ErrShape for zero dimension, got %v", err)
	}
}

func TestSqueeze(t *testing.T) {
	a := New(1, 4, 1, 3, 1)
	s := a.Squeeze()
	if len(s.Dims) != 2 || s.Dims[0] != 4 || s.Dims[1] != 3 {
		t.Errorf("Expected dims [4 3], got %v", s.Dims)
	}
	if New(1, 1).Squeeze().Dims[0] != 1 {
		t.Errorf("Expected a single remaining dimension")
	}
}

func TestEqualIgnoresTrailingSingletons(t *testing.T) {
	a := Fill(2, 3, 2)
	b := Fill(2, 3, 2, 1, 1)
	if !a.Equal(b) {
		t.Error("Expected arrays to be equal")
	}
	c := Fill(2, 2, 3)
	if a.Equal(c) {
		t.Error("Expected arrays with swapped dims to differ")
	}
}

func TestMagnitudeRealImag(t *testing.T) {
	a, _ := FromData([]int{2}, []complex64{complex(3, 4), complex(-1, 0)})
	mag := a.Magnitude()
	if math.Abs(mag[0]-5) > 1e-6 || math.Abs(mag[1]-1) > 1e-6 {
		t.Errorf("Expected magnitudes [5 1], got %v", mag)
	}
	if re := a.Real(); re[0] != 3 || re[1] != -1 {
		t.Errorf("Expected real parts [3 -1], got %v", re)
	}
	if im := a.Imag(); im[0] != 4 || im[1] != 0 {
		t.Errorf("Expected imaginary parts [4 0], got %v", im)
	}
}

func TestCDense(t *testing.T) {
	a := New(2, 1, 3)
	for i := range a.Data {
		a.Data[i] = complex(float32(i), 1)
	}
	m, err := a.CDense()
	if err != nil {
		t.Fatalf("CDense failed: %v", err)
	}
	r, c := m.Dims()
	if r != 2 || c != 3 {
		t.Fatalf("Expected 2x3 matrix, got %dx%d", r, c)
	}
	if m.At(1, 2) != complex(5, 1) {
		t.Errorf("Expected (5+1i) at (1,2), got %v", m.At(1, 2))
	}

	back := FromCDense(m)
	if !back.Equal(a.Squeeze()) {
		t.Errorf("Expected FromCDense to invert CDense")
	}

	if _, err := New(2, 2, 2).CDense(); !errors.Is(err, ErrShape) {
		t.Errorf("Expected ErrShape for 3-D array, got %v", err)
	}
}

func TestString(t *testing.T) {
	if got := New(4, 3).String(); got != "cfl.Array[4x3]" {
		t.Errorf("Expected cfl.Array[4x3], got %s", got)
	}
}
