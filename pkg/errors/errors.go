// Package errors provides the error taxonomy and warning system shared by the
// dataset loader, the regression engine and the parameter store.
//
// Every constructor attaches a stack trace through cockroachdb/errors, and the
// structured types implement zerolog.LogObjectMarshaler so they can be logged
// as objects rather than flattened strings.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		log.Printf("ftlr-warning: %v\n", w)
	}
	// set by pkg/log to avoid an import cycle
	zerologWarnFunc func(warning error)
)

// SetWarningHandler replaces the handler used for warnings when no zerolog
// sink has been installed.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // drop warnings
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs a structured warning sink. Passing nil restores
// the plain handler.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn raises a warning. The zerolog sink wins when one is installed.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Warnings
//
// ===========================================================================

// EmptyDatasetWarning is raised when training is requested on a model that
// holds no samples.
type EmptyDatasetWarning struct {
	Op string
}

func (w *EmptyDatasetWarning) Error() string {
	return fmt.Sprintf("%s: no dataset loaded, nothing to do", w.Op)
}

// MarshalZerologObject adds the warning fields to a zerolog event.
func (w *EmptyDatasetWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("operation", w.Op).
		Str("type", "EmptyDatasetWarning")
}

// NewEmptyDatasetWarning creates a new EmptyDatasetWarning.
func NewEmptyDatasetWarning(op string) *EmptyDatasetWarning {
	return &EmptyDatasetWarning{Op: op}
}

// FallbackDatasetWarning is raised when the loader cannot read its source and
// substitutes the built-in sample set.
type FallbackDatasetWarning struct {
	Path    string
	Samples int
	Cause   error
}

func (w *FallbackDatasetWarning) Error() string {
	return fmt.Sprintf("dataset %q unavailable (%v), using %d built-in samples", w.Path, w.Cause, w.Samples)
}

// MarshalZerologObject adds the warning fields to a zerolog event.
func (w *FallbackDatasetWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("path", w.Path).
		Int("samples", w.Samples).
		AnErr("cause", w.Cause).
		Str("type", "FallbackDatasetWarning")
}

// NewFallbackDatasetWarning creates a new FallbackDatasetWarning.
func NewFallbackDatasetWarning(path string, samples int, cause error) *FallbackDatasetWarning {
	return &FallbackDatasetWarning{Path: path, Samples: samples, Cause: cause}
}

// UndefinedMetricWarning is raised when a metric cannot be computed, e.g. R²
// over targets with zero variance.
type UndefinedMetricWarning struct {
	Metric    string
	Condition string
	Result    float64 // value returned under this condition
}

func (w *UndefinedMetricWarning) Error() string {
	return fmt.Sprintf("'%s' is ill-defined and being set to %f due to %s.", w.Metric, w.Result, w.Condition)
}

// NewUndefinedMetricWarning creates a new UndefinedMetricWarning.
func NewUndefinedMetricWarning(metric, condition string, result float64) *UndefinedMetricWarning {
	return &UndefinedMetricWarning{Metric: metric, Condition: condition, Result: result}
}

// ===========================================================================
//
//	Structured errors
//
// ===========================================================================

// LoadError reports that a dataset source could not be read. It is only
// surfaced by loaders configured to fail closed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("ftlr: cannot load dataset %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *LoadError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("path", e.Path).
		AnErr("cause", e.Err).
		Str("type", "LoadError")
}

// NewLoadError creates a new LoadError with a stack trace.
func NewLoadError(path string, err error) error {
	return errors.WithStack(&LoadError{Path: path, Err: err})
}

// ParseError reports a dataset row whose field is not a finite real number.
// Line is 1-based and counts the header.
type ParseError struct {
	Line   int
	Column int
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ftlr: line %d, column %d: invalid number %q: %v", e.Line, e.Column, e.Value, e.Err)
	}
	return fmt.Sprintf("ftlr: line %d, column %d: invalid number %q", e.Line, e.Column, e.Value)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *ParseError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("line", e.Line).
		Int("column", e.Column).
		Str("value", e.Value).
		Str("type", "ParseError")
}

// NewParseError creates a new ParseError with a stack trace.
func NewParseError(line, column int, value string, err error) error {
	return errors.WithStack(&ParseError{Line: line, Column: column, Value: value, Err: err})
}

// CorruptError reports a parameter file that exists but does not hold
// exactly two real numbers.
type CorruptError struct {
	Path   string
	Line   string
	Reason string
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("ftlr: corrupt parameter file %q: %s (got %q)", e.Path, e.Reason, e.Line)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *CorruptError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("path", e.Path).
		Str("line", e.Line).
		Str("reason", e.Reason).
		Str("type", "CorruptError")
}

// NewCorruptError creates a new CorruptError with a stack trace.
func NewCorruptError(path, line, reason string) error {
	return errors.WithStack(&CorruptError{Path: path, Line: line, Reason: reason})
}

// ValidationError reports a parameter that failed validation.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("ftlr: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError creates a new ValidationError with a stack trace.
func NewValidationError(param, reason string, value interface{}) error {
	return errors.WithStack(&ValidationError{ParamName: param, Reason: reason, Value: value})
}

// DimensionError reports two inputs whose lengths differ.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("ftlr: %s: length mismatch. Expected %d, got %d", e.Op, e.Expected, e.Got)
}

// NewDimensionError creates a new DimensionError with a stack trace.
func NewDimensionError(op string, expected, got int) error {
	return errors.WithStack(&DimensionError{Op: op, Expected: expected, Got: got})
}

// NumericalInstabilityError reports NaN or Inf values showing up during
// training.
type NumericalInstabilityError struct {
	Operation string    // e.g. "cost"
	Values    []float64 // offending values
	Iteration int
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("ftlr: numerical instability detected in %s at iteration %d. Values: [%s]",
		e.Operation, e.Iteration, valStr)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *NumericalInstabilityError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Operation).
		Floats64("values", e.Values).
		Int("iteration", e.Iteration).
		Str("type", "NumericalInstabilityError")
}

// NewNumericalInstabilityError creates a new NumericalInstabilityError.
func NewNumericalInstabilityError(operation string, values []float64, iteration int) error {
	return errors.WithStack(&NumericalInstabilityError{
		Operation: operation,
		Values:    values,
		Iteration: iteration,
	})
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap annotates err with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf annotates err with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to err.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Sentinel errors
//
// ===========================================================================

var (
	// ErrEmptyData is returned when an operation needs at least one sample.
	ErrEmptyData = New("empty data")

	// ErrZeroVariance is returned by R² when the targets are all identical.
	ErrZeroVariance = New("zero variance in targets")
)
