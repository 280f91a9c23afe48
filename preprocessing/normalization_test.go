package preprocessing_test

import (
	"math"
	"testing"

	"github.com/42-Course/ft-linear-regression/dataset"
	"github.com/42-Course/ft-linear-regression/preprocessing"
)

const epsilon = 1e-9 // Tolerance for floating-point comparisons

func TestFromData(t *testing.T) {
	samples := []dataset.Sample{
		{X: 10, Y: 300},
		{X: 30, Y: 100},
		{X: 20, Y: 200},
	}

	f := preprocessing.FromData(samples)

	want := preprocessing.NormalizationFactors{XMin: 10, XMax: 30, YMin: 100, YMax: 300}
	if f != want {
		t.Errorf("FromData() = %v, want %v", f, want)
	}
	if f.XRange() != 20 || f.YRange() != 200 {
		t.Errorf("ranges = (%v, %v), want (20, 200)", f.XRange(), f.YRange())
	}
}

func TestFromData_Empty(t *testing.T) {
	f := preprocessing.FromData(nil)
	if f != preprocessing.IdentityFactors() {
		t.Errorf("FromData(nil) = %v, want identity", f)
	}
}

func TestNormalize_UnitInterval(t *testing.T) {
	samples := dataset.DefaultSamples()
	f := preprocessing.FromData(samples)

	normalized := preprocessing.Normalize(samples, f)
	if len(normalized) != len(samples) {
		t.Fatalf("expected %d samples, got %d", len(samples), len(normalized))
	}

	var sawZeroX, sawOneX, sawZeroY, sawOneY bool
	for i, s := range normalized {
		if s.X < 0 || s.X > 1 || s.Y < 0 || s.Y > 1 {
			t.Errorf("sample %d out of [0,1]: %+v", i, s)
		}
		sawZeroX = sawZeroX || s.X == 0
		sawOneX = sawOneX || s.X == 1
		sawZeroY = sawZeroY || s.Y == 0
		sawOneY = sawOneY || s.Y == 1
	}
	if !sawZeroX || !sawOneX || !sawZeroY || !sawOneY {
		t.Error("the bounds should be reached on both axes")
	}
}

func TestNormalize_RoundTrip(t *testing.T) {
	samples := dataset.DefaultSamples()
	f := preprocessing.FromData(samples)

	for i, s := range samples {
		x := f.DenormalizeX(f.NormalizeX(s.X))
		y := f.DenormalizeY(f.NormalizeY(s.Y))
		if math.Abs(x-s.X) > epsilon {
			t.Errorf("X[%d]: expected %f, got %f", i, s.X, x)
		}
		if math.Abs(y-s.Y) > epsilon {
			t.Errorf("Y[%d]: expected %f, got %f", i, s.Y, y)
		}
	}

	back := preprocessing.Denormalize(preprocessing.Normalize(samples, f), f)
	for i := range samples {
		if math.Abs(back[i].X-samples[i].X) > epsilon || math.Abs(back[i].Y-samples[i].Y) > epsilon {
			t.Errorf("sample %d: expected %+v, got %+v", i, samples[i], back[i])
		}
	}
}

func TestNormalize_ZeroRange(t *testing.T) {
	tests := []struct {
		name    string
		samples []dataset.Sample
	}{
		{"constant x", []dataset.Sample{{X: 5, Y: 1}, {X: 5, Y: 2}}},
		{"constant y", []dataset.Sample{{X: 1, Y: 7}, {X: 2, Y: 7}}},
		{"single sample", []dataset.Sample{{X: 42, Y: 4200}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := preprocessing.FromData(tt.samples)
			if !f.IsDegenerate() {
				t.Fatal("expected degenerate factors")
			}

			for i, s := range preprocessing.Normalize(tt.samples, f) {
				if math.IsNaN(s.X) || math.IsNaN(s.Y) {
					t.Errorf("sample %d produced NaN: %+v", i, s)
				}
			}

			// the round trip still holds on the degenerate axis
			for i, s := range tt.samples {
				if got := f.DenormalizeX(f.NormalizeX(s.X)); math.Abs(got-s.X) > epsilon {
					t.Errorf("X[%d]: expected %f, got %f", i, s.X, got)
				}
				if got := f.DenormalizeY(f.NormalizeY(s.Y)); math.Abs(got-s.Y) > epsilon {
					t.Errorf("Y[%d]: expected %f, got %f", i, s.Y, got)
				}
			}
		})
	}

	f := preprocessing.NormalizationFactors{XMin: 5, XMax: 5, YMin: 0, YMax: 1}
	if got := f.NormalizeX(1e6); got != 0 {
		t.Errorf("NormalizeX on zero range = %v, want 0", got)
	}
}

func TestColumns(t *testing.T) {
	samples := []dataset.Sample{{X: 0, Y: 10}, {X: 5, Y: 20}, {X: 10, Y: 30}}
	f := preprocessing.FromData(samples)

	x, y := preprocessing.Columns(samples, f)
	if x.Len() != 3 || y.Len() != 3 {
		t.Fatalf("expected length 3, got %d and %d", x.Len(), y.Len())
	}
	want := []float64{0, 0.5, 1}
	for i, w := range want {
		if math.Abs(x.AtVec(i)-w) > epsilon || math.Abs(y.AtVec(i)-w) > epsilon {
			t.Errorf("row %d: got (%f, %f), want (%f, %f)", i, x.AtVec(i), y.AtVec(i), w, w)
		}
	}

	if x, y := preprocessing.Columns(nil, f); x != nil || y != nil {
		t.Error("empty dataset should give nil columns")
	}
}
