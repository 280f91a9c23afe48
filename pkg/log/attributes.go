// Standard attribute keys. Keys are hierarchical ("model.name",
// "data.samples") so logs from every component can be filtered the same way.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the type of model, e.g. "GradientDescent".
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "load", "save", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is logging.
	// Examples: "linear", "dataset", "model"
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of model lifecycle.
	PhaseKey = "ml.phase"
)

// Data shape and provenance.
const (
	// SamplesKey indicates the number of samples in the dataset.
	SamplesKey = "data.samples"

	// PathKey records a file location being read or written.
	PathKey = "data.path"

	// SourceKey records where a dataset came from: "file" or "builtin".
	SourceKey = "data.source"
)

// Performance and training metrics.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// LossKey records the cost value during training or evaluation.
	LossKey = "metrics.loss"

	// MAEKey records mean absolute error.
	MAEKey = "metrics.mae"

	// RMSEKey records root mean squared error.
	RMSEKey = "metrics.rmse"

	// R2ScoreKey records the coefficient of determination.
	R2ScoreKey = "metrics.r2_score"

	// IterationKey records the current iteration number.
	IterationKey = "training.iteration"

	// IterationsKey records the number of iterations requested or run.
	IterationsKey = "training.iterations"

	// StopReasonKey records why a training call ended.
	StopReasonKey = "training.stop_reason"
)

// Model parameters and hyperparameters.
const (
	// Theta0Key records the intercept.
	Theta0Key = "params.theta0"

	// Theta1Key records the slope.
	Theta1Key = "params.theta1"

	// LearningRateKey records the learning rate.
	LearningRateKey = "hyperparams.learning_rate"

	// ToleranceKey records the convergence tolerance.
	ToleranceKey = "hyperparams.tolerance"
)

// Error context.
const (
	// ErrorTypeKey categorizes the type of error encountered.
	ErrorTypeKey = "error.type"

	// StacktraceKey contains stack trace information for debugging.
	StacktraceKey = "error.stacktrace"
)

// Standard attribute values.
const (
	OperationFit     = "fit"
	OperationPredict = "predict"
	OperationScore   = "score"
	OperationLoad    = "load"
	OperationSave    = "save"

	PhaseTraining      = "training"
	PhaseInference     = "inference"
	PhasePreprocessing = "preprocessing"
	PhasePersistence   = "persistence"
)
