package preview

import (
	"fmt"
	"image"
	"os"

	"gobart/pkg/cfl"
)

// LoadImage reads a PNG or JPEG file as a real-valued width x height array
// with intensities in [0, 1].
func LoadImage(path string) (*cfl.Array, error) {
	img, err := decodeImage(path)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	a := cfl.New(b.Dx(), b.Dy())
	fillFromImage(a.Data, img)
	return a, nil
}

// LoadImages stacks equally sized images along the third dimension.
func LoadImages(paths []string) (*cfl.Array, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no images given")
	}

	var a *cfl.Array
	var size int
	for i, path := range paths {
		img, err := decodeImage(path)
		if err != nil {
			return nil, err
		}
		b := img.Bounds()
		if a == nil {
			a = cfl.New(b.Dx(), b.Dy(), len(paths))
			size = b.Dx() * b.Dy()
		} else if b.Dx()*b.Dy() != size || b.Dx() != a.Dims[0] {
			return nil, fmt.Errorf("image %s is %dx%d, want %dx%d", path, b.Dx(), b.Dy(), a.Dims[0], a.Dims[1])
		}
		fillFromImage(a.Data[i*size:(i+1)*size], img)
	}
	return a, nil
}

func decodeImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return img, nil
}

// fillFromImage stores the red channel of img, x fastest.
func fillFromImage(dst []complex64, img image.Image) {
	bounds := img.Bounds()
	width := bounds.Dx()
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < width; x++ {
			r, _, _, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// Convert 16-bit color to the 0-1 range
			dst[y*width+x] = complex(float32(float64(r)/65535.0), 0)
		}
	}
}
