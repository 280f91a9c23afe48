// Package ftlr predicts a car's price from its mileage with a univariate
// linear model trained by batch gradient descent.
//
// The module is split the way the rest of the code base is organized:
//
//   - dataset: Sample, the CSV Loader and the built-in fallback samples
//   - preprocessing: min/max NormalizationFactors
//   - linear: the GradientDescent model, Train/Predict/ComputePrecision
//   - metrics: MAE, MSE, RMSE and R² over gonum vectors
//   - core/model: the ParamStore that persists θ0,θ1 between runs
//   - pkg/config, pkg/errors, pkg/log: configuration, error taxonomy and
//     structured logging
//
// # Quick Start
//
//	gd, err := linear.New(dataset.NewLoader("data/data.csv"), linear.WithLearningRate(0.1))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report := gd.Train(1000)
//	fmt.Println(report.Reason, gd.Predict(50000))
//
//	store := model.NewParamStore("data/theta.csv")
//	if err := store.SaveFrom(gd); err != nil {
//	    log.Fatal(err)
//	}
//
// Training is deterministic and single-threaded. Front ends that want to
// show progress call Train(1) in a loop; convergence is detected across
// calls, so the result matches a single Train(n).
//
// # Failure Modes
//
// A dataset that cannot be opened or holds a malformed row is replaced by 24
// built-in samples unless the loader is built with
// dataset.WithFailClosed(true), in which case Load returns *errors.LoadError
// or *errors.ParseError. A parameter file whose first line is not two numbers
// yields *errors.CorruptError.
package ftlr
