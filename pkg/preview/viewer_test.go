package preview

import (
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"gobart/pkg/cfl"
)

// volume builds a 4x3x2 array whose value encodes its own index.
func volume() *cfl.Array {
	a := cfl.New(4, 3, 2)
	for z := 0; z < 2; z++ {
		for y := 0; y < 3; y++ {
			for x := 0; x < 4; x++ {
				a.Set(complex(float32(x+4*y+12*z), 0), x, y, z)
			}
		}
	}
	return a
}

// TestExtractSlice verifies that slices are correctly extracted from the array
func TestExtractSlice(t *testing.T) {
	v := NewViewer(volume())

	img, err := v.ExtractSlice(0, 1, map[int]int{2: 1})
	if err != nil {
		t.Fatalf("ExtractSlice failed: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("Expected 4x3 image, got %dx%d", b.Dx(), b.Dy())
	}
	// last element holds the peak
	if got := img.Gray16At(3, 2).Y; got != 65535 {
		t.Errorf("Expected peak intensity 65535, got %d", got)
	}
	// x=0,y=0,z=1 holds 12 of 23
	ratio := 12.0 / 23.0
	want := uint16(ratio * 65535)
	if got := img.Gray16At(0, 0).Y; got != want {
		t.Errorf("Expected intensity %d, got %d", want, got)
	}
}

func TestExtractSliceTransposed(t *testing.T) {
	v := NewViewer(volume())
	img, err := v.ExtractSlice(2, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 4 {
		t.Errorf("Expected 2x4 image, got %v", img.Bounds())
	}
	if img.Gray16At(0, 0).Y != 0 {
		t.Errorf("Expected zero at origin, got %d", img.Gray16At(0, 0).Y)
	}
}

// TestExtractSliceBeyondRank verifies that dimensions past the shape act as singletons
func TestExtractSliceBeyondRank(t *testing.T) {
	v := NewViewer(cfl.Fill(complex(0, 2), 5))
	img, err := v.ExtractSlice(0, 3, nil)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 5 || img.Bounds().Dy() != 1 {
		t.Errorf("Expected 5x1 image, got %v", img.Bounds())
	}
	if img.Gray16At(4, 0).Y != 65535 {
		t.Errorf("Expected full intensity, got %d", img.Gray16At(4, 0).Y)
	}
}

func TestExtractSliceInvalid(t *testing.T) {
	v := NewViewer(volume())
	tests := []struct {
		name  string
		a, b  int
		fixed map[int]int
	}{
		{"same dimension", 1, 1, nil},
		{"negative dimension", -1, 0, nil},
		{"position out of range", 0, 1, map[int]int{2: 2}},
		{"negative position", 0, 1, map[int]int{2: -1}},
		{"negative fixed dimension", 0, 1, map[int]int{-1: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := v.ExtractSlice(tt.a, tt.b, tt.fixed); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

// TestZeroArray verifies that an all-zero array renders black
func TestZeroArray(t *testing.T) {
	img, err := NewViewer(cfl.New(3, 3)).ExtractSlice(0, 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range img.Pix {
		if p != 0 {
			t.Fatal("Expected black image")
		}
	}
}

func TestSaveSlice(t *testing.T) {
	dir := t.TempDir()
	img, err := NewViewer(volume()).ExtractSlice(0, 1, nil)
	if err != nil {
		t.Fatal(err)
	}

	pngPath := filepath.Join(dir, "slice.png")
	if err := SaveSlice(img, pngPath); err != nil {
		t.Fatalf("SaveSlice png: %v", err)
	}
	f, err := os.Open(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Expected valid PNG: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("Expected bounds %v, got %v", img.Bounds(), decoded.Bounds())
	}

	jpgPath := filepath.Join(dir, "slice.JPG")
	if err := SaveSlice(img, jpgPath); err != nil {
		t.Fatalf("SaveSlice jpeg: %v", err)
	}
	g, err := os.Open(jpgPath)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()
	if _, err := jpeg.Decode(g); err != nil {
		t.Errorf("Expected valid JPEG: %v", err)
	}

	if err := SaveSlice(img, filepath.Join(dir, "slice.bmp")); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

// TestSaveSliceSequence verifies that one file is written per position
func TestSaveSliceSequence(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	files, err := NewViewer(volume()).SaveSliceSequence(0, 1, 2, nil, dir)
	if err != nil {
		t.Fatalf("SaveSliceSequence failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("Expected 2 files, got %d", len(files))
	}
	for i, name := range []string{"slice_2_000.png", "slice_2_001.png"} {
		if filepath.Base(files[i]) != name {
			t.Errorf("Expected %s, got %s", name, filepath.Base(files[i]))
		}
		if _, err := os.Stat(files[i]); err != nil {
			t.Errorf("Expected %s to exist: %v", files[i], err)
		}
	}

	if _, err := NewViewer(volume()).SaveSliceSequence(0, 1, 1, nil, dir); err == nil {
		t.Error("Expected error when sequencing along a slice dimension")
	}
}
