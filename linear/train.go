package linear

import (
	"context"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/42-Course/ft-linear-regression/pkg/errors"
	"github.com/42-Course/ft-linear-regression/pkg/log"
)

// StopReason tells why a Train call returned.
type StopReason int

const (
	// StopCompleted means every requested step was taken.
	StopCompleted StopReason = iota
	// StopConverged means the cost changed by less than the tolerance.
	StopConverged
	// StopNumericalStall means the cost became NaN or infinite.
	StopNumericalStall
	// StopEmptyDataset means there was nothing to train on.
	StopEmptyDataset
)

func (r StopReason) String() string {
	switch r {
	case StopCompleted:
		return "completed"
	case StopConverged:
		return "converged"
	case StopNumericalStall:
		return "numerical_stall"
	case StopEmptyDataset:
		return "empty_dataset"
	default:
		return "unknown"
	}
}

// TrainReport summarizes one Train call.
type TrainReport struct {
	// Iterations is the number of steps taken by this call.
	Iterations int
	Reason     StopReason
	// Cost is the cost at the parameters training stopped with.
	Cost float64
}

// ComputeCost returns J = (1/2m) Σ (θ0 + θ1·x − y)² over the normalized
// dataset, or NaN when it is empty.
func (gd *GradientDescent) ComputeCost() float64 {
	n := gd.m()
	if n == 0 {
		return math.NaN()
	}
	r := gd.residuals(mat.NewVecDense(n, nil))
	return mat.Dot(r, r) / (2 * float64(n))
}

// residuals writes θ0 + θ1·x − y into dst and returns it.
func (gd *GradientDescent) residuals(dst *mat.VecDense) *mat.VecDense {
	dst.ScaleVec(gd.theta1, gd.x)
	dst.SubVec(dst, gd.y)
	floats.AddConst(gd.theta0, dst.RawVector().Data)
	return dst
}

// Train runs up to iterations steps of batch gradient descent. Each step
// records the cost before updating θ0 and θ1 simultaneously. Training stops
// early on a non-finite cost, or when the cost moved by less than the
// tolerance since the last recorded step, including steps taken by earlier
// calls. Negative iterations count as zero.
func (gd *GradientDescent) Train(iterations int) TrainReport {
	n := gd.m()
	if n == 0 {
		errors.Warn(errors.NewEmptyDatasetWarning("GradientDescent.Train"))
		return TrainReport{Reason: StopEmptyDataset, Cost: math.NaN()}
	}
	if iterations < 0 {
		iterations = 0
	}

	// single steps are driven in loops; keep them out of the info log
	quiet := iterations <= 1
	start := time.Now()

	mf := float64(n)
	report := TrainReport{Reason: StopCompleted}
	for i := 0; i < iterations; i++ {
		r := gd.residuals(gd.resid)
		cost := mat.Dot(r, r) / (2 * mf)

		if err := errors.CheckNumericalStability("cost", []float64{cost, gd.theta0, gd.theta1}, len(gd.costs)); err != nil {
			errors.Warn(err)
			report.Reason = StopNumericalStall
			report.Cost = cost
			break
		}
		if k := len(gd.costs); k > 0 && math.Abs(gd.costs[k-1]-cost) < gd.tolerance {
			report.Reason = StopConverged
			report.Cost = cost
			break
		}

		g0 := mat.Sum(r) / mf
		g1 := mat.Dot(r, gd.x) / mf
		gd.theta0 -= gd.learningRate * g0
		gd.theta1 -= gd.learningRate * g1
		gd.costs = append(gd.costs, cost)
		report.Iterations++

		if gd.logger.Enabled(context.Background(), log.LevelDebug) {
			gd.logger.Debug("Step",
				log.IterationKey, len(gd.costs),
				log.LossKey, cost,
			)
		}
	}
	if report.Reason == StopCompleted {
		report.Cost = gd.ComputeCost()
	}
	gd.state.RecordSteps(report.Iterations)

	fields := []any{
		log.OperationKey, log.OperationFit,
		log.IterationsKey, report.Iterations,
		log.StopReasonKey, report.Reason.String(),
		log.LossKey, report.Cost,
		log.Theta0Key, gd.theta0,
		log.Theta1Key, gd.theta1,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	}
	switch {
	case report.Reason == StopNumericalStall:
		gd.logger.Warn("Training stalled", fields...)
	case !quiet:
		gd.logger.Info("Training finished", fields...)
	default:
		gd.logger.Debug("Training finished", fields...)
	}
	return report
}
