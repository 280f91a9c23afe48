// Package metrics computes regression fit-quality metrics over gonum vectors.
package metrics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/42-Course/ft-linear-regression/pkg/errors"
)

// residuals returns yTrue - yPred after validating the shapes.
func residuals(op string, yTrue, yPred *mat.VecDense) (*mat.VecDense, error) {
	n := yTrue.Len()
	if n == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, op)
	}
	if yPred.Len() != n {
		return nil, errors.NewDimensionError(op, n, yPred.Len())
	}

	r := mat.NewVecDense(n, nil)
	r.SubVec(yTrue, yPred)
	return r, nil
}

// MSE returns the mean squared error.
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	r, err := residuals("MSE", yTrue, yPred)
	if err != nil {
		return 0, err
	}
	// MSE = (1/n) * Σ(yTrue - yPred)²
	return mat.Dot(r, r) / float64(r.Len()), nil
}

// RMSE returns the root mean squared error.
func RMSE(yTrue, yPred *mat.VecDense) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE returns the mean absolute error.
func MAE(yTrue, yPred *mat.VecDense) (float64, error) {
	r, err := residuals("MAE", yTrue, yPred)
	if err != nil {
		return 0, err
	}
	// MAE = (1/n) * Σ|yTrue - yPred|
	return floats.Norm(r.RawVector().Data, 1) / float64(r.Len()), nil
}

// R2Score returns the coefficient of determination.
//
// When every yTrue is identical the total sum of squares is zero and R² is
// undefined: R2Score returns NaN together with an error wrapping
// ErrZeroVariance.
func R2Score(yTrue, yPred *mat.VecDense) (float64, error) {
	r, err := residuals("R2Score", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	ys := mat.Col(nil, 0, yTrue)
	yMean := stat.Mean(ys, nil)

	var tss float64
	for _, y := range ys {
		tss += (y - yMean) * (y - yMean)
	}
	if tss == 0 {
		return math.NaN(), errors.Wrap(errors.ErrZeroVariance, "R2Score")
	}

	// R² = 1 - RSS/TSS
	return 1 - mat.Dot(r, r)/tss, nil
}

// Precision bundles the error metrics reported for a fitted model, in
// original units.
type Precision struct {
	MAE  float64
	MSE  float64
	RMSE float64
	R2   float64
}

// NaNPrecision is the result for an empty dataset.
func NaNPrecision() Precision {
	nan := math.NaN()
	return Precision{MAE: nan, MSE: nan, RMSE: nan, R2: nan}
}

// Evaluate computes every metric at once. It never fails: an empty or
// mismatched input gives NaNPrecision, and zero variance in yTrue gives a
// NaN R² and raises an UndefinedMetricWarning.
func Evaluate(yTrue, yPred *mat.VecDense) Precision {
	if yTrue == nil || yPred == nil {
		return NaNPrecision()
	}

	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return NaNPrecision()
	}
	mae, _ := MAE(yTrue, yPred)

	r2, err := R2Score(yTrue, yPred)
	if errors.Is(err, errors.ErrZeroVariance) {
		errors.Warn(errors.NewUndefinedMetricWarning("r2", "zero variance in targets", r2))
	}

	return Precision{
		MAE:  mae,
		MSE:  mse,
		RMSE: math.Sqrt(mse),
		R2:   r2,
	}
}

// String returns the metrics with five decimals each.
func (p Precision) String() string {
	return fmt.Sprintf("MAE: %.5f, MSE: %.5f, RMSE: %.5f, R²: %.5f", p.MAE, p.MSE, p.RMSE, p.R2)
}
