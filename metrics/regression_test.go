package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/42-Course/ft-linear-regression/pkg/errors"
)

func TestMSE(t *testing.T) {
	tests := []struct {
		name      string
		yTrue     *mat.VecDense
		yPred     *mat.VecDense
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "perfect prediction",
			yTrue:     mat.NewVecDense(5, []float64{1.0, 2.0, 3.0, 4.0, 5.0}),
			yPred:     mat.NewVecDense(5, []float64{1.0, 2.0, 3.0, 4.0, 5.0}),
			want:      0.0,
			tolerance: 1e-10,
		},
		{
			name:      "simple case",
			yTrue:     mat.NewVecDense(4, []float64{1.0, 2.0, 3.0, 4.0}),
			yPred:     mat.NewVecDense(4, []float64{1.5, 2.5, 2.5, 3.5}),
			want:      0.25, // (0.25 * 4) / 4
			tolerance: 1e-10,
		},
		{
			name:      "larger errors",
			yTrue:     mat.NewVecDense(3, []float64{10.0, 20.0, 30.0}),
			yPred:     mat.NewVecDense(3, []float64{12.0, 18.0, 33.0}),
			want:      17.0 / 3.0, // (4 + 4 + 9) / 3
			tolerance: 1e-10,
		},
		{
			name:    "dimension mismatch",
			yTrue:   mat.NewVecDense(3, []float64{1.0, 2.0, 3.0}),
			yPred:   mat.NewVecDense(2, []float64{1.0, 2.0}),
			wantErr: true,
		},
		{
			name:    "empty vectors",
			yTrue:   &mat.VecDense{},
			yPred:   &mat.VecDense{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MSE(tt.yTrue, tt.yPred)

			if (err != nil) != tt.wantErr {
				t.Errorf("MSE() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("MSE() = %v, want %v (tolerance: %v)", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestEmptyVectors(t *testing.T) {
	empty := &mat.VecDense{}
	if _, err := MAE(empty, empty); !errors.Is(err, errors.ErrEmptyData) {
		t.Errorf("MAE() error = %v, want ErrEmptyData", err)
	}
	if _, err := R2Score(empty, empty); !errors.Is(err, errors.ErrEmptyData) {
		t.Errorf("R2Score() error = %v, want ErrEmptyData", err)
	}
}

func TestRMSE(t *testing.T) {
	yTrue := mat.NewVecDense(3, []float64{10.0, 20.0, 30.0})
	yPred := mat.NewVecDense(3, []float64{12.0, 18.0, 33.0})

	got, err := RMSE(yTrue, yPred)
	if err != nil {
		t.Fatalf("RMSE() error = %v", err)
	}
	if want := math.Sqrt(17.0 / 3.0); math.Abs(got-want) > 1e-10 {
		t.Errorf("RMSE() = %v, want %v", got, want)
	}
}

func TestMAE(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   *mat.VecDense
		yPred   *mat.VecDense
		want    float64
		wantErr bool
	}{
		{
			name:  "mixed signs",
			yTrue: mat.NewVecDense(3, []float64{10.0, 20.0, 30.0}),
			yPred: mat.NewVecDense(3, []float64{12.0, 18.0, 33.0}),
			want:  7.0 / 3.0, // (2 + 2 + 3) / 3
		},
		{
			name:  "perfect prediction",
			yTrue: mat.NewVecDense(2, []float64{-1.0, 1.0}),
			yPred: mat.NewVecDense(2, []float64{-1.0, 1.0}),
			want:  0.0,
		},
		{
			name:    "dimension mismatch",
			yTrue:   mat.NewVecDense(2, []float64{1.0, 2.0}),
			yPred:   mat.NewVecDense(1, []float64{1.0}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MAE(tt.yTrue, tt.yPred)
			if (err != nil) != tt.wantErr {
				t.Errorf("MAE() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-10 {
				t.Errorf("MAE() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestR2Score(t *testing.T) {
	yTrue := mat.NewVecDense(4, []float64{1.0, 2.0, 3.0, 4.0})

	got, err := R2Score(yTrue, mat.NewVecDense(4, []float64{1.0, 2.0, 3.0, 4.0}))
	if err != nil || got != 1.0 {
		t.Errorf("perfect fit: R2Score() = %v, %v; want 1, nil", got, err)
	}

	// predicting the mean everywhere scores zero
	got, err = R2Score(yTrue, mat.NewVecDense(4, []float64{2.5, 2.5, 2.5, 2.5}))
	if err != nil || math.Abs(got) > 1e-12 {
		t.Errorf("mean prediction: R2Score() = %v, %v; want 0, nil", got, err)
	}

	// RSS = 1.0, TSS = 5.0
	got, err = R2Score(yTrue, mat.NewVecDense(4, []float64{1.5, 2.5, 2.5, 3.5}))
	if err != nil || math.Abs(got-0.8) > 1e-12 {
		t.Errorf("R2Score() = %v, %v; want 0.8, nil", got, err)
	}
}

func TestR2Score_ZeroVariance(t *testing.T) {
	yTrue := mat.NewVecDense(3, []float64{7.0, 7.0, 7.0})
	yPred := mat.NewVecDense(3, []float64{6.0, 7.0, 8.0})

	got, err := R2Score(yTrue, yPred)
	if !math.IsNaN(got) {
		t.Errorf("R2Score() = %v, want NaN", got)
	}
	if !errors.Is(err, errors.ErrZeroVariance) {
		t.Errorf("expected ErrZeroVariance, got %v", err)
	}
}

func TestEvaluate(t *testing.T) {
	yTrue := mat.NewVecDense(4, []float64{1.0, 2.0, 3.0, 4.0})
	yPred := mat.NewVecDense(4, []float64{1.5, 2.5, 2.5, 3.5})

	p := Evaluate(yTrue, yPred)

	checks := map[string][2]float64{
		"MAE":  {p.MAE, 0.5},
		"MSE":  {p.MSE, 0.25},
		"RMSE": {p.RMSE, 0.5},
		"R2":   {p.R2, 0.8},
	}
	for name, c := range checks {
		if math.Abs(c[0]-c[1]) > 1e-12 {
			t.Errorf("%s = %v, want %v", name, c[0], c[1])
		}
	}
}

func TestEvaluate_Degenerate(t *testing.T) {
	var warned []error
	errors.SetWarningHandler(func(w error) { warned = append(warned, w) })
	defer errors.SetWarningHandler(nil)

	empty := Evaluate(nil, nil)
	for name, v := range map[string]float64{"MAE": empty.MAE, "MSE": empty.MSE, "RMSE": empty.RMSE, "R2": empty.R2} {
		if !math.IsNaN(v) {
			t.Errorf("empty: %s = %v, want NaN", name, v)
		}
	}

	flat := Evaluate(mat.NewVecDense(2, []float64{3, 3}), mat.NewVecDense(2, []float64{2, 4}))
	if flat.MAE != 1 || flat.MSE != 1 {
		t.Errorf("flat targets: MAE=%v MSE=%v, want 1 and 1", flat.MAE, flat.MSE)
	}
	if !math.IsNaN(flat.R2) {
		t.Errorf("flat targets: R2 = %v, want NaN", flat.R2)
	}
	if len(warned) != 1 {
		t.Errorf("expected one UndefinedMetricWarning, got %d", len(warned))
	}
}
