package bart

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gobart/pkg/cfl"
)

// Typed bindings for the tools used most often. Each is a thin layer over
// Run; optional numeric settings are pointers so that zero stays a value.

// first runs tool and returns its first output.
func (c *Client) first(ctx context.Context, tool string, args Args) (*cfl.Array, error) {
	res, err := c.Run(ctx, tool, args)
	if err != nil {
		return nil, err
	}
	return res.First(), nil
}

// text runs tool and returns its trimmed stdout.
func (c *Client) text(ctx context.Context, tool string, args Args) (string, error) {
	res, err := c.Run(ctx, tool, args)
	if err != nil {
		return "", err
	}
	return res.Text(), nil
}

// optString maps "" to unset.
func optString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// Ones returns an array of ones with the given dimension sizes.
func (c *Client) Ones(ctx context.Context, sizes ...int) (*cfl.Array, error) {
	return c.first(ctx, "ones", Args{"dims": len(sizes), "sizes": sizes})
}

// Zeros returns a zero-filled array with the given dimension sizes.
func (c *Client) Zeros(ctx context.Context, sizes ...int) (*cfl.Array, error) {
	return c.first(ctx, "zeros", Args{"dims": len(sizes), "sizes": sizes})
}

type FFTOptions struct {
	Unitary    bool
	Inverse    bool
	Uncentered bool
}

// FFT transforms in along the dimensions selected by bitmask.
func (c *Client) FFT(ctx context.Context, bitmask int, in *cfl.Array, opts FFTOptions) (*cfl.Array, error) {
	return c.first(ctx, "fft", Args{
		"u":       opts.Unitary,
		"i":       opts.Inverse,
		"n":       opts.Uncentered,
		"bitmask": bitmask,
		"input":   in,
	})
}

// FFTShift shifts along the dimensions selected by bitmask; inverse applies
// ifftshift.
func (c *Client) FFTShift(ctx context.Context, bitmask int, in *cfl.Array, inverse bool) (*cfl.Array, error) {
	return c.first(ctx, "fftshift", Args{"b": inverse, "bitmask": bitmask, "input": in})
}

type PhantomOptions struct {
	// KSpace produces k-space instead of an image.
	KSpace bool

	// Coils simulates that many coil sensitivities.
	Coils *int

	// Trajectory samples k-space along a non-Cartesian trajectory.
	Trajectory *cfl.Array

	// Size is the image size in y and z.
	Size *int

	Geometric bool
	Tubes     bool
	ThreeD    bool
	Seed      *int
}

func (c *Client) Phantom(ctx context.Context, opts PhantomOptions) (*cfl.Array, error) {
	return c.first(ctx, "phantom", Args{
		"k": opts.KSpace,
		"s": opts.Coils,
		"t": opts.Trajectory,
		"x": opts.Size,
		"G": opts.Geometric,
		"T": opts.Tubes,
		"3": opts.ThreeD,
		"r": opts.Seed,
	})
}

type TrajOptions struct {
	Samples      *int
	Lines        *int
	Turns        *int
	Radial       bool
	GoldenRatio  bool
	DoubleAngle  bool
	ThreeD       bool
	Oversampling *float64
	// GradientDelays holds the x, y and xy delays.
	GradientDelays []float64
}

// Traj computes a k-space trajectory.
func (c *Client) Traj(ctx context.Context, opts TrajOptions) (*cfl.Array, error) {
	return c.first(ctx, "traj", Args{
		"x": opts.Samples,
		"y": opts.Lines,
		"t": opts.Turns,
		"r": opts.Radial,
		"G": opts.GoldenRatio,
		"D": opts.DoubleAngle,
		"3": opts.ThreeD,
		"o": opts.Oversampling,
		"q": opts.GradientDelays,
	})
}

type ECalibOptions struct {
	Threshold *float64
	Crop      *float64
	Kernel    []int
	Calib     []int
	Maps      *int
	Soft      bool
	Auto      bool
}

// ECalib estimates coil sensitivities with ESPIRiT. The eigenvalue maps are
// nil when the toolbox does not write them.
func (c *Client) ECalib(ctx context.Context, kspace *cfl.Array, opts ECalibOptions) (sens, evMaps *cfl.Array, err error) {
	res, err := c.Run(ctx, "ecalib", Args{
		"t":      opts.Threshold,
		"c":      opts.Crop,
		"k":      opts.Kernel,
		"r":      opts.Calib,
		"m":      opts.Maps,
		"S":      opts.Soft,
		"a":      opts.Auto,
		"kspace": kspace,
	})
	if err != nil {
		return nil, nil, err
	}
	return res.Output("sensitivities"), res.Output("ev_maps"), nil
}

type PICSOptions struct {
	// Regularization is an -R term such as "W:7:0:0.005".
	Regularization string
	Lambda         *float64
	Iterations     *int
	Trajectory     *cfl.Array
	Pattern        *cfl.Array
	RealValued     bool
	GPU            bool
	Rescale        bool
	Wavelet        string
	Debug          *int
}

// PICS runs a parallel-imaging compressed-sensing reconstruction.
func (c *Client) PICS(ctx context.Context, kspace, sens *cfl.Array, opts PICSOptions) (*cfl.Array, error) {
	return c.first(ctx, "pics", Args{
		"R":             optString(opts.Regularization),
		"r":             opts.Lambda,
		"i":             opts.Iterations,
		"t":             opts.Trajectory,
		"p":             opts.Pattern,
		"c":             opts.RealValued,
		"g":             opts.GPU,
		"S":             opts.Rescale,
		"wavelet":       optString(opts.Wavelet),
		"d":             opts.Debug,
		"kspace":        kspace,
		"sensitivities": sens,
	})
}

type NUFFTOptions struct {
	Adjoint  bool
	Inverse  bool
	Dims     []int
	Toeplitz bool
	Lambda   *float64
}

// NUFFT applies the non-uniform FFT along traj.
func (c *Client) NUFFT(ctx context.Context, traj, in *cfl.Array, opts NUFFTOptions) (*cfl.Array, error) {
	return c.first(ctx, "nufft", Args{
		"a":     opts.Adjoint,
		"i":     opts.Inverse,
		"d":     opts.Dims,
		"t":     opts.Toeplitz,
		"l":     opts.Lambda,
		"traj":  traj,
		"input": in,
	})
}

// RSS computes the root of sum of squares along the selected dimensions.
func (c *Client) RSS(ctx context.Context, bitmask int, in *cfl.Array) (*cfl.Array, error) {
	return c.first(ctx, "rss", Args{"bitmask": bitmask, "input": in})
}

// Scale multiplies every element by factor.
func (c *Client) Scale(ctx context.Context, factor complex128, in *cfl.Array) (*cfl.Array, error) {
	return c.first(ctx, "scale", Args{"factor": factor, "input": in})
}

// Resize truncates or zero-pads dims[i] to sizes[i].
func (c *Client) Resize(ctx context.Context, dims, sizes []int, in *cfl.Array, center bool) (*cfl.Array, error) {
	return c.first(ctx, "resize", Args{"c": center, "dim": dims, "size": sizes, "input": in})
}

// Slice picks position pos[i] along dims[i].
func (c *Client) Slice(ctx context.Context, dims, pos []int, in *cfl.Array) (*cfl.Array, error) {
	return c.first(ctx, "slice", Args{"dim": dims, "pos": pos, "input": in})
}

// Extract keeps [start[i], end[i]) along dims[i].
func (c *Client) Extract(ctx context.Context, dims, start, end []int, in *cfl.Array) (*cfl.Array, error) {
	return c.first(ctx, "extract", Args{"dim": dims, "start": start, "end": end, "input": in})
}

func (c *Client) Transpose(ctx context.Context, dim1, dim2 int, in *cfl.Array) (*cfl.Array, error) {
	return c.first(ctx, "transpose", Args{"dim1": dim1, "dim2": dim2, "input": in})
}

func (c *Client) Squeeze(ctx context.Context, in *cfl.Array) (*cfl.Array, error) {
	return c.first(ctx, "squeeze", Args{"input": in})
}

func (c *Client) Avg(ctx context.Context, bitmask int, in *cfl.Array, weighted bool) (*cfl.Array, error) {
	return c.first(ctx, "avg", Args{"w": weighted, "bitmask": bitmask, "input": in})
}

func (c *Client) Cabs(ctx context.Context, in *cfl.Array) (*cfl.Array, error) {
	return c.first(ctx, "cabs", Args{"input": in})
}

func (c *Client) Conj(ctx context.Context, in *cfl.Array) (*cfl.Array, error) {
	return c.first(ctx, "conj", Args{"input": in})
}

// Crop keeps the central size samples along dim.
func (c *Client) Crop(ctx context.Context, dim, size int, in *cfl.Array) (*cfl.Array, error) {
	return c.first(ctx, "crop", Args{"dimension": dim, "size": size, "input": in})
}

type PoissonOptions struct {
	SizeY           *int
	SizeZ           *int
	AccelY          *float64
	AccelZ          *float64
	Calib           *int
	VariableDensity bool
	Elliptical      bool
	Seed            *int
}

// Poisson computes a Poisson-disc sampling pattern.
func (c *Client) Poisson(ctx context.Context, opts PoissonOptions) (*cfl.Array, error) {
	return c.first(ctx, "poisson", Args{
		"Y": opts.SizeY,
		"Z": opts.SizeZ,
		"y": opts.AccelY,
		"z": opts.AccelZ,
		"C": opts.Calib,
		"v": opts.VariableDensity,
		"e": opts.Elliptical,
		"s": opts.Seed,
	})
}

type NLInvOptions struct {
	Iterations *int
	Maps       *int
	Pattern    *cfl.Array
	Trajectory *cfl.Array
	Rescale    bool
	GPU        bool
}

// NLInv jointly estimates image and sensitivities. The sensitivities are nil
// when the toolbox does not write them.
func (c *Client) NLInv(ctx context.Context, kspace *cfl.Array, opts NLInvOptions) (img, sens *cfl.Array, err error) {
	res, err := c.Run(ctx, "nlinv", Args{
		"i":      opts.Iterations,
		"m":      opts.Maps,
		"p":      opts.Pattern,
		"t":      opts.Trajectory,
		"S":      opts.Rescale,
		"g":      opts.GPU,
		"kspace": kspace,
	})
	if err != nil {
		return nil, nil, err
	}
	return res.Output("output"), res.Output("sensitivities"), nil
}

// Bitmask converts dimension indices into a bitmask.
func (c *Client) Bitmask(ctx context.Context, dims ...int) (int, error) {
	out, err := c.text(ctx, "bitmask", Args{"dims": dims})
	if err != nil {
		return 0, err
	}
	vals, err := parseInts(out)
	if err != nil {
		return 0, err
	}
	if len(vals) != 1 {
		return 0, fmt.Errorf("bart bitmask: unexpected output %q", out)
	}
	return vals[0], nil
}

// BitmaskDims converts a bitmask into the dimension indices it selects.
func (c *Client) BitmaskDims(ctx context.Context, mask int) ([]int, error) {
	out, err := c.text(ctx, "bitmask", Args{"b": true, "dims": []int{mask}})
	if err != nil {
		return nil, err
	}
	return parseInts(out)
}

type ShowOptions struct {
	Meta      bool
	Dim       *int
	Separator string
	Format    string
}

// Show prints the values or metadata of in.
func (c *Client) Show(ctx context.Context, in *cfl.Array, opts ShowOptions) (string, error) {
	return c.text(ctx, "show", Args{
		"m":     opts.Meta,
		"d":     opts.Dim,
		"s":     optString(opts.Separator),
		"f":     optString(opts.Format),
		"input": in,
	})
}

// Version returns the toolbox version string.
func (c *Client) Version(ctx context.Context) (string, error) {
	return c.text(ctx, "version", nil)
}

// EstVar estimates the noise variance of kspace.
func (c *Client) EstVar(ctx context.Context, kspace *cfl.Array) (float64, error) {
	out, err := c.text(ctx, "estvar", Args{"kspace": kspace})
	if err != nil {
		return 0, err
	}
	return parseLastFloat(out)
}

// NRMSE returns norm(in - ref) / norm(ref), optionally after fitting a
// complex scale.
func (c *Client) NRMSE(ctx context.Context, ref, in *cfl.Array, autoScale bool) (float64, error) {
	out, err := c.text(ctx, "nrmse", Args{"s": autoScale, "reference": ref, "input": in})
	if err != nil {
		return 0, err
	}
	return parseLastFloat(out)
}

// SDot returns the dot product of two arrays.
func (c *Client) SDot(ctx context.Context, a, b *cfl.Array) (complex128, error) {
	out, err := c.text(ctx, "sdot", Args{"input1": a, "input2": b})
	if err != nil {
		return 0, err
	}
	fields := strings.Fields(out)
	if len(fields) == 0 {
		return 0, fmt.Errorf("bart sdot: empty output")
	}
	last := fields[len(fields)-1]
	v, err := strconv.ParseComplex(last, 128)
	if err != nil {
		return 0, fmt.Errorf("bart sdot: parse %q: %w", last, err)
	}
	return v, nil
}

func parseInts(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bart: parse integer %q: %w", f, err)
		}
		out[i] = v
	}
	return out, nil
}

// parseLastFloat reads the final number of a line such as
// "Estimated noise variance: 1.5e-05".
func parseLastFloat(s string) (float64, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, fmt.Errorf("bart: empty output")
	}
	last := fields[len(fields)-1]
	v, err := strconv.ParseFloat(last, 64)
	if err != nil {
		return 0, fmt.Errorf("bart: parse number %q: %w", last, err)
	}
	return v, nil
}
