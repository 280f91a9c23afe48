// Package config holds the explicit configuration passed to the dataset
// loader, the parameter store and the regression engine.
//
// Values come from, in increasing precedence: documented defaults, an
// optional dotenv file, and the process environment. Load never touches
// process-wide state; it returns a Config by value.
package config

import (
	"math"
	"os"

	"github.com/spf13/viper"

	"github.com/42-Course/ft-linear-regression/pkg/errors"
	"github.com/42-Course/ft-linear-regression/pkg/log"
)

// Documented defaults.
const (
	DefaultDatasetPath  = "data/data.csv"
	DefaultThetaPath    = "data/theta.csv"
	DefaultLearningRate = 0.001
	DefaultIterations   = 1000
	DefaultLogLevel     = "info"
	DefaultFailClosed   = false
)

// Config keys and the environment variables bound to them.
const (
	keyDatasetPath  = "dataset_path"
	keyThetaPath    = "theta_path"
	keyLearningRate = "learning_rate"
	keyIterations   = "iterations"
	keyLogLevel     = "log_level"
	keyFailClosed   = "dataset_fail_closed"
)

var envBindings = map[string]string{
	keyDatasetPath:  "DATASET_PATH",
	keyThetaPath:    "THETA_PATH",
	keyLearningRate: "LEARNING_RATE",
	keyIterations:   "ITERATIONS",
	keyLogLevel:     "LOG_LEVEL",
	keyFailClosed:   "DATASET_FAIL_CLOSED",
}

// Config is the full set of tunables.
type Config struct {
	// DatasetPath is the CSV with a header row and km,price rows.
	DatasetPath string
	// DatasetFailClosed makes an unreadable or malformed dataset an error
	// instead of falling back to the built-in samples.
	DatasetFailClosed bool
	// ThetaPath is where θ0,θ1 are persisted.
	ThetaPath string
	// LearningRate is the gradient descent step size.
	LearningRate float64
	// Iterations is the training budget used by collaborators.
	Iterations int
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Default returns the documented defaults.
func Default() Config {
	return Config{
		DatasetPath:       DefaultDatasetPath,
		DatasetFailClosed: DefaultFailClosed,
		ThetaPath:         DefaultThetaPath,
		LearningRate:      DefaultLearningRate,
		Iterations:        DefaultIterations,
		LogLevel:          DefaultLogLevel,
	}
}

// Load reads configuration from envFile (skipped when empty or missing) and
// from the environment, then validates it.
func Load(envFile string) (Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault(keyDatasetPath, def.DatasetPath)
	v.SetDefault(keyThetaPath, def.ThetaPath)
	v.SetDefault(keyLearningRate, def.LearningRate)
	v.SetDefault(keyIterations, def.Iterations)
	v.SetDefault(keyLogLevel, def.LogLevel)
	v.SetDefault(keyFailClosed, def.DatasetFailClosed)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, errors.Wrapf(err, "binding %s", env)
		}
	}

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return Config{}, errors.Wrapf(err, "reading %s", envFile)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, errors.Wrapf(err, "stat %s", envFile)
		}
	}

	cfg := Config{
		DatasetPath:       v.GetString(keyDatasetPath),
		DatasetFailClosed: v.GetBool(keyFailClosed),
		ThetaPath:         v.GetString(keyThetaPath),
		LearningRate:      v.GetFloat64(keyLearningRate),
		Iterations:        v.GetInt(keyIterations),
		LogLevel:          v.GetString(keyLogLevel),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.ThetaPath == "" {
		return errors.NewValidationError(keyThetaPath, "must not be empty", c.ThetaPath)
	}
	if math.IsNaN(c.LearningRate) || math.IsInf(c.LearningRate, 0) || c.LearningRate <= 0 {
		return errors.NewValidationError(keyLearningRate, "must be a finite positive number", c.LearningRate)
	}
	if c.Iterations < 0 {
		return errors.NewValidationError(keyIterations, "must not be negative", c.Iterations)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level. Call after Validate.
func (c Config) Level() log.Level {
	level, _ := log.ParseLevel(c.LogLevel)
	return level
}
