// Package preview renders two-dimensional cuts of multi-dimensional arrays
// as grayscale images.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/floats"

	"gobart/pkg/cfl"
)

// Viewer extracts magnitude images from one array. Intensities are scaled
// so that the largest magnitude in the whole array maps to white, which
// keeps a slice sequence comparable frame to frame.
type Viewer struct {
	array *cfl.Array
	dims  []int
	mag   []float64
	peak  float64
}

// NewViewer creates a viewer over a.
func NewViewer(a *cfl.Array) *Viewer {
	mag := a.Magnitude()
	peak := 0.0
	if len(mag) > 0 {
		peak = floats.Max(mag)
	}
	return &Viewer{
		array: a,
		dims:  a.Shape(),
		mag:   mag,
		peak:  peak,
	}
}

// size returns the extent of dim, treating dimensions past the stored shape
// as singleton.
func (v *Viewer) size(dim int) int {
	if dim < 0 {
		return 0
	}
	if dim < len(v.dims) {
		return v.dims[dim]
	}
	return 1
}

// ExtractSlice returns the plane spanned by dimA (columns) and dimB (rows).
// Every other dimension sits at the index given in fixed, or 0.
func (v *Viewer) ExtractSlice(dimA, dimB int, fixed map[int]int) (*image.Gray16, error) {
	if dimA < 0 || dimB < 0 {
		return nil, fmt.Errorf("dimensions must be non-negative")
	}
	if dimA == dimB {
		return nil, fmt.Errorf("slice dimensions must differ, got %d twice", dimA)
	}

	rank := max(len(v.dims), dimA+1, dimB+1)
	idx := make([]int, rank)
	for d, pos := range fixed {
		if d == dimA || d == dimB {
			continue
		}
		if d < 0 {
			return nil, fmt.Errorf("dimension %d must be non-negative", d)
		}
		if pos < 0 || pos >= v.size(d) {
			return nil, fmt.Errorf("position %d out of range for dimension %d (size %d)", pos, d, v.size(d))
		}
		if d >= rank {
			continue
		}
		idx[d] = pos
	}

	w, h := v.size(dimA), v.size(dimB)
	img := image.NewGray16(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx[dimA] = x
			idx[dimB] = y
			img.SetGray16(x, y, color.Gray16{Y: v.intensity(idx)})
		}
	}
	return img, nil
}

func (v *Viewer) intensity(idx []int) uint16 {
	if v.peak == 0 {
		return 0
	}
	off := 0
	stride := 1
	for d, i := range idx {
		off += i * stride
		stride *= v.size(d)
	}
	value := v.mag[off] / v.peak
	return uint16(math.Max(0, math.Min(65535, value*65535)))
}

// SaveSlice writes img to filename. The format follows the extension:
// .png is lossless, .jpg and .jpeg use quality 90.
func SaveSlice(img image.Image, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		err = png.Encode(file, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(file, img, &jpeg.Options{Quality: 90})
	default:
		return fmt.Errorf("unsupported image format: %s", filename)
	}
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", filename, err)
	}
	return file.Close()
}

// SaveSliceSequence writes one PNG per position along dim, named
// slice_<dim>_<pos>.png, and returns the files written.
func (v *Viewer) SaveSliceSequence(dimA, dimB, dim int, fixed map[int]int, outputDir string) ([]string, error) {
	if dim == dimA || dim == dimB {
		return nil, fmt.Errorf("sequence dimension %d is part of the slice plane", dim)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, err
	}

	pos := make(map[int]int, len(fixed)+1)
	for d, p := range fixed {
		pos[d] = p
	}

	var files []string
	for i := 0; i < v.size(dim); i++ {
		pos[dim] = i
		img, err := v.ExtractSlice(dimA, dimB, pos)
		if err != nil {
			return files, err
		}

		filename := filepath.Join(outputDir, fmt.Sprintf("slice_%d_%03d.png", dim, i))
		if err := SaveSlice(img, filename); err != nil {
			return files, err
		}
		files = append(files, filename)
	}
	return files, nil
}
