package cfl

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrNoDimensions is returned when a header has no "# Dimensions" section.
	ErrNoDimensions = errors.New("cfl: header has no dimensions")

	// ErrShortPayload is returned when the payload holds fewer elements than
	// the header declares.
	ErrShortPayload = errors.New("cfl: payload shorter than header")
)

const (
	headerExt = ".hdr"
	dataExt   = ".cfl"

	// bytesPerElement is two little-endian float32 values.
	bytesPerElement = 8
)

// WriteCFL writes a to <base>.hdr and <base>.cfl.
func WriteCFL(base string, a *Array) error {
	if a == nil {
		return fmt.Errorf("%w: nil array", ErrShape)
	}
	n, err := elementCount(a.Dims)
	if err != nil {
		return err
	}
	if n != len(a.Data) {
		return fmt.Errorf("%w: dims %v need %d elements, got %d", ErrShape, a.Dims, n, len(a.Data))
	}

	hdr, err := os.Create(base + headerExt)
	if err != nil {
		return fmt.Errorf("error creating header file: %w", err)
	}
	if err := EncodeHeader(hdr, a.Dims); err != nil {
		hdr.Close()
		return err
	}
	if err := hdr.Close(); err != nil {
		return fmt.Errorf("error closing header file: %w", err)
	}

	f, err := os.Create(base + dataExt)
	if err != nil {
		return fmt.Errorf("error creating data file: %w", err)
	}
	w := bufio.NewWriter(f)
	if err := EncodeData(w, a.Data); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("error writing data file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("error closing data file: %w", err)
	}
	return nil
}

// ReadCFL reads the array stored at <base>.hdr and <base>.cfl.
// Trailing singleton dimensions are dropped.
func ReadCFL(base string) (*Array, error) {
	hdr, err := os.Open(base + headerExt)
	if err != nil {
		return nil, fmt.Errorf("error opening header file: %w", err)
	}
	dims, err := DecodeHeader(hdr)
	hdr.Close()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", base+headerExt, err)
	}
	dims = trimTrailing(dims)

	n, err := elementCount(dims)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(base + dataExt)
	if err != nil {
		return nil, fmt.Errorf("error opening data file: %w", err)
	}
	defer f.Close()

	// check the size before allocating for a header that may be corrupt
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("error reading data file: %w", err)
	}
	if n > math.MaxInt/bytesPerElement || info.Size() < int64(n)*bytesPerElement {
		return nil, fmt.Errorf("%s: %w: %d bytes for %v", base+dataExt, ErrShortPayload, info.Size(), dims)
	}

	data, err := DecodeData(bufio.NewReader(f), n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", base+dataExt, err)
	}
	return &Array{Dims: append([]int(nil), dims...), Data: data}, nil
}

// Exists reports whether both files of the pair are present.
func Exists(base string) bool {
	for _, ext := range []string{headerExt, dataExt} {
		if _, err := os.Stat(base + ext); err != nil {
			return false
		}
	}
	return true
}

// EncodeHeader writes the text header for dims.
func EncodeHeader(w io.Writer, dims []int) error {
	parts := make([]string, len(dims))
	for i, d := range dims {
		parts[i] = strconv.Itoa(d)
	}
	if _, err := fmt.Fprintf(w, "# Dimensions\n%s\n", strings.Join(parts, " ")); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}
	return nil
}

// DecodeHeader parses a header and returns the dimensions exactly as listed.
// Sections other than "# Dimensions" are skipped.
func DecodeHeader(r io.Reader) ([]int, error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(line, "#") {
			continue
		}
		if strings.TrimSpace(strings.TrimPrefix(line, "#")) != "Dimensions" {
			continue
		}
		if !sc.Scan() {
			break
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			break
		}
		dims := make([]int, len(fields))
		for i, f := range fields {
			d, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("cfl: bad dimension %q: %w", f, err)
			}
			dims[i] = d
		}
		return dims, nil
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}
	return nil, ErrNoDimensions
}

// EncodeData writes data as interleaved little-endian float32 pairs.
func EncodeData(w io.Writer, data []complex64) error {
	var buf [bytesPerElement]byte
	for _, v := range data {
		binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(real(v)))
		binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(imag(v)))
		if _, err := w.Write(buf[:]); err != nil {
			return fmt.Errorf("error writing data: %w", err)
		}
	}
	return nil
}

// DecodeData reads n complex elements. Extra trailing bytes are ignored.
func DecodeData(r io.Reader, n int) ([]complex64, error) {
	data := make([]complex64, n)
	var buf [bytesPerElement]byte
	for i := range data {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w: got %d of %d elements", ErrShortPayload, i, n)
			}
			return nil, fmt.Errorf("error reading data: %w", err)
		}
		re := math.Float32frombits(binary.LittleEndian.Uint32(buf[0:4]))
		im := math.Float32frombits(binary.LittleEndian.Uint32(buf[4:8]))
		data[i] = complex(re, im)
	}
	return data, nil
}
