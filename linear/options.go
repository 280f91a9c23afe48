package linear

import (
	"github.com/42-Course/ft-linear-regression/pkg/log"
)

const (
	// DefaultLearningRate is used when no WithLearningRate option is given.
	DefaultLearningRate = 0.001

	// DefaultTolerance is the smallest cost change that still counts as
	// progress.
	DefaultTolerance = 1e-6
)

// Option is a function that configures GradientDescent
type Option func(*GradientDescent)

// WithLearningRate sets the step size alpha. It must be finite and positive;
// the constructor rejects anything else.
func WithLearningRate(alpha float64) Option {
	return func(gd *GradientDescent) {
		gd.learningRate = alpha
	}
}

// WithTolerance sets the convergence threshold on |previous cost - cost|.
func WithTolerance(tol float64) Option {
	return func(gd *GradientDescent) {
		gd.tolerance = tol
	}
}

// WithLogger sets the logger
func WithLogger(logger log.Logger) Option {
	return func(gd *GradientDescent) {
		gd.logger = logger
	}
}
