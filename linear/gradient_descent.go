// Package linear implements univariate linear regression trained by batch
// gradient descent on min/max normalized data.
//
// The model is price = θ0 + θ1·mileage, fitted in normalized space. Training
// can be run in one call or driven one step at a time:
//
//	gd, err := linear.New(dataset.NewLoader("data/data.csv"), linear.WithLearningRate(0.1))
//	if err != nil {
//	    return err
//	}
//	for gd.Train(1).Reason == linear.StopCompleted {
//	    // redraw, report progress, ...
//	}
//	price := gd.Predict(50000)
package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/42-Course/ft-linear-regression/core/model"
	"github.com/42-Course/ft-linear-regression/dataset"
	"github.com/42-Course/ft-linear-regression/metrics"
	"github.com/42-Course/ft-linear-regression/pkg/errors"
	"github.com/42-Course/ft-linear-regression/pkg/log"
	"github.com/42-Course/ft-linear-regression/preprocessing"
)

// DatasetLoader supplies the training samples. *dataset.Loader satisfies it.
type DatasetLoader interface {
	Load() ([]dataset.Sample, error)
}

// GradientDescent is a univariate linear model trained by batch gradient
// descent.
//
// θ0 and θ1 live in normalized space. The normalization factors are computed
// once at construction and never change afterwards.
type GradientDescent struct {
	theta0       float64
	theta1       float64
	learningRate float64
	tolerance    float64

	// normalized columns; nil when the dataset is empty
	x *mat.VecDense
	y *mat.VecDense

	// scratch for residuals during Train
	resid *mat.VecDense

	factors preprocessing.NormalizationFactors
	costs   []float64
	state   *model.StateManager
	logger  log.Logger
}

// New loads the dataset through loader and builds an untrained model on it.
// It fails only when the loader fails.
func New(loader DatasetLoader, opts ...Option) (*GradientDescent, error) {
	samples, err := loader.Load()
	if err != nil {
		return nil, err
	}
	return NewFromSamples(samples, opts...)
}

// NewFromSamples builds an untrained model on an in-memory dataset. samples
// is not retained.
func NewFromSamples(samples []dataset.Sample, opts ...Option) (*GradientDescent, error) {
	gd := &GradientDescent{
		learningRate: DefaultLearningRate,
		tolerance:    DefaultTolerance,
		state:        model.NewStateManager(),
		logger:       log.GetLoggerWithName("linear"),
	}
	for _, opt := range opts {
		opt(gd)
	}

	if !errors.IsFinite(gd.learningRate) || gd.learningRate <= 0 {
		return nil, errors.NewValidationError("learning_rate", "must be a finite number greater than 0", gd.learningRate)
	}
	if !errors.IsFinite(gd.tolerance) || gd.tolerance < 0 {
		return nil, errors.NewValidationError("tolerance", "must be a finite number not less than 0", gd.tolerance)
	}

	gd.factors = preprocessing.FromData(samples)
	gd.x, gd.y = preprocessing.Columns(samples, gd.factors)
	if gd.x != nil {
		gd.resid = mat.NewVecDense(gd.x.Len(), nil)
	}
	gd.state.SetSamples(len(samples))
	gd.logger = gd.logger.With(log.ModelNameKey, "GradientDescent")

	gd.logger.Debug("Model initialized",
		log.SamplesKey, len(samples),
		log.LearningRateKey, gd.learningRate,
		log.ToleranceKey, gd.tolerance,
	)
	return gd, nil
}

// m returns the number of stored samples.
func (gd *GradientDescent) m() int {
	if gd.x == nil {
		return 0
	}
	return gd.x.Len()
}

// Predict maps a mileage to a price. An untrained model (θ == (0, 0))
// predicts exactly 0.
func (gd *GradientDescent) Predict(x float64) float64 {
	if gd.theta0 == 0 && gd.theta1 == 0 {
		return 0
	}
	xNorm := gd.factors.NormalizeX(x)
	return gd.factors.DenormalizeY(gd.theta0 + gd.theta1*xNorm)
}

// PredictBatch applies Predict to every element of xs.
func (gd *GradientDescent) PredictBatch(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = gd.Predict(x)
	}
	return out
}

// ComputePrecision scores the current parameters against the stored dataset
// in original units. An empty dataset yields NaN for every metric, as does R²
// when all targets are equal.
func (gd *GradientDescent) ComputePrecision() metrics.Precision {
	n := gd.m()
	if n == 0 {
		return metrics.NaNPrecision()
	}

	yTrue := mat.NewVecDense(n, nil)
	yPred := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		yTrue.SetVec(i, gd.factors.DenormalizeY(gd.y.AtVec(i)))
		yPred.SetVec(i, gd.Predict(gd.factors.DenormalizeX(gd.x.AtVec(i))))
	}

	p := metrics.Evaluate(yTrue, yPred)
	gd.logger.Debug("Precision computed",
		log.OperationKey, log.OperationScore,
		log.MAEKey, p.MAE,
		log.RMSEKey, p.RMSE,
		log.R2ScoreKey, p.R2,
	)
	return p
}

// Params returns (θ0, θ1) in normalized space.
func (gd *GradientDescent) Params() (theta0, theta1 float64) {
	return gd.theta0, gd.theta1
}

// SetParams overwrites θ without training, e.g. to restore saved values.
// It does not change the training state.
func (gd *GradientDescent) SetParams(theta0, theta1 float64) {
	gd.theta0 = theta0
	gd.theta1 = theta1
}

// Dataset reconstructs the stored samples in original units.
func (gd *GradientDescent) Dataset() []dataset.Sample {
	return preprocessing.Denormalize(gd.NormalizedDataset(), gd.factors)
}

// NormalizedDataset returns the stored samples as the model sees them.
func (gd *GradientDescent) NormalizedDataset() []dataset.Sample {
	n := gd.m()
	out := make([]dataset.Sample, n)
	for i := 0; i < n; i++ {
		out[i] = dataset.Sample{X: gd.x.AtVec(i), Y: gd.y.AtVec(i)}
	}
	return out
}

// CostHistory returns a copy of the pre-update cost of every step taken.
func (gd *GradientDescent) CostHistory() []float64 {
	out := make([]float64, len(gd.costs))
	copy(out, gd.costs)
	return out
}

// LearningRate returns alpha.
func (gd *GradientDescent) LearningRate() float64 {
	return gd.learningRate
}

// Tolerance returns the convergence threshold.
func (gd *GradientDescent) Tolerance() float64 {
	return gd.tolerance
}

// Factors returns the normalization bounds computed at construction.
func (gd *GradientDescent) Factors() preprocessing.NormalizationFactors {
	return gd.factors
}

// IsTrained reports whether at least one training step has been taken.
func (gd *GradientDescent) IsTrained() bool {
	return gd.state.IsFitted()
}

// State returns a snapshot of the training bookkeeping.
func (gd *GradientDescent) State() model.ModelState {
	return gd.state.GetState()
}
