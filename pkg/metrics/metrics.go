// Package metrics compares toolbox outputs locally, without another process
// round trip. Complex errors are measured on the complex values; similarity
// measures work on magnitudes.
package metrics

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"gobart/pkg/cfl"
)

// ErrShapeMismatch is returned when the arrays cannot be compared element-wise.
var ErrShapeMismatch = errors.New("metrics: shape mismatch")

// Report holds the result of comparing a candidate against a reference.
type Report struct {
	// RMSE is the root mean square of |candidate - reference|.
	RMSE float64

	// NRMSE is ||candidate - reference|| / ||reference||, the same quantity
	// the toolbox's nrmse command prints. It is +Inf for an all-zero
	// reference unless both arrays are identical.
	NRMSE float64

	// PSNR in dB, with the peak taken as the reference's largest magnitude
	PSNR float64

	// Correlation is the Pearson correlation of the magnitudes.
	Correlation float64

	// SSIM (Structural Similarity Index) of the magnitudes, both scaled by
	// the reference peak. Values range from -1 to 1, with 1 indicating
	// identical structure.
	SSIM float64

	// MutualInformation of the magnitudes in nats, under a Gaussian
	// approximation. Zero when either signal is constant.
	MutualInformation float64

	// EntropyDiff is the difference in Shannon entropy of the magnitude
	// histograms. Lower values indicate better information preservation.
	EntropyDiff float64

	MaxAbsError float64
}

// Summary describes the magnitude distribution of one array.
type Summary struct {
	Min, Max  float64
	Mean, Std float64
	Entropy   float64
}

// Compare measures how far candidate is from reference. Trailing singleton
// dimensions are ignored when matching shapes.
func Compare(reference, candidate *cfl.Array) (Report, error) {
	if reference == nil || candidate == nil {
		return Report{}, fmt.Errorf("%w: nil array", ErrShapeMismatch)
	}
	if !cfl.SameShape(reference, candidate) || reference.Len() != candidate.Len() {
		return Report{}, fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, reference.Dims, candidate.Dims)
	}
	n := reference.Len()
	if n == 0 {
		return Report{}, fmt.Errorf("%w: empty arrays", ErrShapeMismatch)
	}

	diff := make([]float64, n)
	for i := range diff {
		diff[i] = cmplx.Abs(complex128(candidate.Data[i]) - complex128(reference.Data[i]))
	}
	refMag := reference.Magnitude()
	candMag := candidate.Magnitude()

	var r Report
	errNorm := floats.Norm(diff, 2)
	r.RMSE = errNorm / math.Sqrt(float64(n))
	r.MaxAbsError = floats.Max(diff)

	refNorm := floats.Norm(refMag, 2)
	switch {
	case refNorm > 0:
		r.NRMSE = errNorm / refNorm
	case errNorm == 0:
		r.NRMSE = 0
	default:
		r.NRMSE = math.Inf(1)
	}

	peak := floats.Max(refMag)
	r.PSNR = psnr(peak, r.RMSE)
	r.Correlation = correlation(refMag, candMag)

	if peak > 0 {
		x := scaled(refMag, 1/peak)
		y := scaled(candMag, 1/peak)
		r.SSIM = calculateSSIM(x, y)
	} else {
		r.SSIM = calculateSSIM(refMag, candMag)
	}
	r.MutualInformation = mutualInformation(refMag, candMag)
	r.EntropyDiff = math.Abs(calculateEntropy(refMag) - calculateEntropy(candMag))

	return r, nil
}

// Summarize reports the magnitude statistics of a.
func Summarize(a *cfl.Array) Summary {
	if a == nil || a.Len() == 0 {
		return Summary{}
	}
	mag := a.Magnitude()
	mean, std := stat.PopMeanStdDev(mag, nil)
	return Summary{
		Min:     floats.Min(mag),
		Max:     floats.Max(mag),
		Mean:    mean,
		Std:     std,
		Entropy: calculateEntropy(mag),
	}
}

func psnr(peak, rmse float64) float64 {
	if rmse == 0 {
		return math.Inf(1)
	}
	if peak == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(peak/rmse)
}

// correlation is 1 for two constant, equal signals and 0 when only one of
// them is constant.
func correlation(x, y []float64) float64 {
	vx := stat.Variance(x, nil)
	vy := stat.Variance(y, nil)
	if vx == 0 || vy == 0 || math.IsNaN(vx) || math.IsNaN(vy) {
		if vx == vy && floats.Equal(x, y) {
			return 1
		}
		return 0
	}
	return stat.Correlation(x, y, nil)
}

// mutualInformation approximates MI as
// 0.5 * log(var(X) var(Y) / (var(X) var(Y) - cov(X,Y)^2)).
// Perfectly correlated signals have a vanishing determinant and report +Inf.
func mutualInformation(x, y []float64) float64 {
	if len(x) < 2 || len(x) != len(y) {
		return 0
	}
	vx := stat.Variance(x, nil)
	vy := stat.Variance(y, nil)
	if vx <= 0 || vy <= 0 {
		return 0
	}
	cov := stat.Covariance(x, y, nil)
	det := vx*vy - cov*cov
	if det <= 0 {
		return math.Inf(1)
	}
	return 0.5 * math.Log(vx*vy/det)
}

func scaled(x []float64, s float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	floats.Scale(s, out)
	return out
}

// calculateSSIM computes a global Structural Similarity Index over data
// scaled to a dynamic range of 1.
func calculateSSIM(x, y []float64) float64 {
	const L = 1.0
	const k1 = 0.01
	const k2 = 0.03

	c1 := (k1 * L) * (k1 * L)
	c2 := (k2 * L) * (k2 * L)

	n := len(x)
	if n != len(y) || n == 0 {
		return 0
	}

	muX := stat.Mean(x, nil)
	muY := stat.Mean(y, nil)

	var sigmaX, sigmaY, sigmaXY float64
	if n > 1 {
		sigmaX = stat.Variance(x, nil)
		sigmaY = stat.Variance(y, nil)
		sigmaXY = stat.Covariance(x, y, nil)
	}

	num := (2*muX*muY + c1) * (2*sigmaXY + c2)
	den := (muX*muX + muY*muY + c1) * (sigmaX + sigmaY + c2)
	if den > 0 {
		return num / den
	}
	return 0
}

// calculateEntropy computes the Shannon entropy (bits) of a 256-bin histogram.
func calculateEntropy(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	lo, hi := floats.Min(data), floats.Max(data)
	if hi <= lo {
		return 0
	}

	const numBins = 256
	hist := make([]float64, numBins)
	width := (hi - lo) / numBins
	for _, v := range data {
		bin := int((v - lo) / width)
		if bin >= numBins {
			bin = numBins - 1
		}
		hist[bin]++
	}

	total := float64(len(data))
	entropy := 0.0
	for _, count := range hist {
		if count > 0 {
			p := count / total
			entropy -= p * math.Log2(p)
		}
	}
	return entropy
}
