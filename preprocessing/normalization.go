// Package preprocessing provides the min/max scaling applied to samples
// before training and undone after prediction.
package preprocessing

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/42-Course/ft-linear-regression/dataset"
)

// NormalizationFactors holds the per-axis bounds of a training set.
//
// Normalized values lie in [0, 1] for every sample the factors were computed
// from. An axis whose bounds are equal is degenerate: it normalizes to 0 and
// denormalizes back to its single value, so no NaN is ever produced.
type NormalizationFactors struct {
	XMin float64
	XMax float64
	YMin float64
	YMax float64
}

// IdentityFactors maps [0, 1] onto itself on both axes. It is what FromData
// returns for an empty dataset.
func IdentityFactors() NormalizationFactors {
	return NormalizationFactors{XMin: 0, XMax: 1, YMin: 0, YMax: 1}
}

// FromData computes the bounds of samples independently on each axis.
func FromData(samples []dataset.Sample) NormalizationFactors {
	if len(samples) == 0 {
		return IdentityFactors()
	}
	xs, ys := dataset.Split(samples)
	return NormalizationFactors{
		XMin: floats.Min(xs),
		XMax: floats.Max(xs),
		YMin: floats.Min(ys),
		YMax: floats.Max(ys),
	}
}

// XRange returns XMax - XMin.
func (f NormalizationFactors) XRange() float64 {
	return f.XMax - f.XMin
}

// YRange returns YMax - YMin.
func (f NormalizationFactors) YRange() float64 {
	return f.YMax - f.YMin
}

// IsDegenerate reports whether either axis has zero range.
func (f NormalizationFactors) IsDegenerate() bool {
	return f.XRange() == 0 || f.YRange() == 0
}

// NormalizeX maps a mileage into normalized space.
func (f NormalizationFactors) NormalizeX(v float64) float64 {
	return scale(v, f.XMin, f.XRange())
}

// NormalizeY maps a price into normalized space.
func (f NormalizationFactors) NormalizeY(v float64) float64 {
	return scale(v, f.YMin, f.YRange())
}

// DenormalizeX is the inverse of NormalizeX.
func (f NormalizationFactors) DenormalizeX(v float64) float64 {
	return v*f.XRange() + f.XMin
}

// DenormalizeY is the inverse of NormalizeY.
func (f NormalizationFactors) DenormalizeY(v float64) float64 {
	return v*f.YRange() + f.YMin
}

func scale(v, min, width float64) float64 {
	if width == 0 {
		return 0
	}
	return (v - min) / width
}

// Normalize returns a normalized copy of samples, order preserved.
func Normalize(samples []dataset.Sample, f NormalizationFactors) []dataset.Sample {
	out := make([]dataset.Sample, len(samples))
	for i, s := range samples {
		out[i] = dataset.Sample{X: f.NormalizeX(s.X), Y: f.NormalizeY(s.Y)}
	}
	return out
}

// Denormalize is the inverse of Normalize.
func Denormalize(samples []dataset.Sample, f NormalizationFactors) []dataset.Sample {
	out := make([]dataset.Sample, len(samples))
	for i, s := range samples {
		out[i] = dataset.Sample{X: f.DenormalizeX(s.X), Y: f.DenormalizeY(s.Y)}
	}
	return out
}

// Columns normalizes samples into separate x and y vectors. Both are nil for
// an empty dataset, since gonum vectors cannot have zero length.
func Columns(samples []dataset.Sample, f NormalizationFactors) (x, y *mat.VecDense) {
	if len(samples) == 0 {
		return nil, nil
	}
	x = mat.NewVecDense(len(samples), nil)
	y = mat.NewVecDense(len(samples), nil)
	for i, s := range samples {
		x.SetVec(i, f.NormalizeX(s.X))
		y.SetVec(i, f.NormalizeY(s.Y))
	}
	return x, y
}

// String returns a readable form of the factors.
func (f NormalizationFactors) String() string {
	return fmt.Sprintf("NormalizationFactors(x=[%g, %g], y=[%g, %g])", f.XMin, f.XMax, f.YMin, f.YMax)
}
