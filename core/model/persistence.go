package model

import (
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/42-Course/ft-linear-regression/pkg/errors"
	"github.com/42-Course/ft-linear-regression/pkg/log"
)

// ParamStore persists θ as a single text line "<theta0>,<theta1>". Every
// save overwrites the whole file.
type ParamStore struct {
	path   string
	logger log.Logger
}

// NewParamStore creates a store backed by the file at path.
func NewParamStore(path string) *ParamStore {
	return &ParamStore{
		path:   path,
		logger: log.GetLoggerWithName("model"),
	}
}

// Path returns the backing file location.
func (s *ParamStore) Path() string {
	return s.path
}

// Save writes θ to the file, creating parent directories as needed. Values
// use the shortest representation that parses back exactly.
func (s *ParamStore) Save(theta0, theta1 float64) (err error) {
	defer errors.Recover(&err, "ParamStore.Save")

	if !errors.IsFinite(theta0) {
		return errors.NewValidationError("theta0", "must be finite", theta0)
	}
	if !errors.IsFinite(theta1) {
		return errors.NewValidationError("theta1", "must be finite", theta1)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "creating directory for %q", s.path)
		}
	}

	line := FormatParams(theta0, theta1) + "\n"
	if err := os.WriteFile(s.path, []byte(line), 0o644); err != nil {
		return errors.Wrapf(err, "writing parameters to %q", s.path)
	}

	s.logger.Info("Parameters saved",
		log.OperationKey, log.OperationSave,
		log.PathKey, s.path,
		log.Theta0Key, theta0,
		log.Theta1Key, theta1,
	)
	return nil
}

// Load reads θ from the file. A missing file is created empty and, like an
// empty file, yields (0, 0). A first line that is not two finite numbers is a
// CorruptError.
func (s *ParamStore) Load() (theta0, theta1 float64, err error) {
	defer errors.Recover(&err, "ParamStore.Load")

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := s.create(); err != nil {
			return 0, 0, err
		}
		return 0, 0, nil
	}
	if err != nil {
		return 0, 0, errors.Wrapf(err, "reading parameters from %q", s.path)
	}

	line, _, _ := strings.Cut(string(data), "\n")
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, 0, nil
	}

	theta0, theta1, err = ParseParams(line)
	if err != nil {
		return 0, 0, errors.NewCorruptError(s.path, line, err.Error())
	}

	s.logger.Debug("Parameters loaded",
		log.OperationKey, log.OperationLoad,
		log.PathKey, s.path,
		log.Theta0Key, theta0,
		log.Theta1Key, theta1,
	)
	return theta0, theta1, nil
}

// SaveFrom persists the parameters of m.
func (s *ParamStore) SaveFrom(m ParamHolder) error {
	return s.Save(m.Params())
}

// RestoreInto loads the stored parameters into m.
func (s *ParamStore) RestoreInto(m ParamHolder) error {
	theta0, theta1, err := s.Load()
	if err != nil {
		return err
	}
	m.SetParams(theta0, theta1)
	return nil
}

func (s *ParamStore) create() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "creating directory for %q", s.path)
		}
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "creating %q", s.path)
	}
	return errors.WithStack(f.Close())
}

// FormatParams renders the parameter line without a trailing newline.
func FormatParams(theta0, theta1 float64) string {
	return strconv.FormatFloat(theta0, 'g', -1, 64) + "," + strconv.FormatFloat(theta1, 'g', -1, 64)
}

// ParseParams parses a "<theta0>,<theta1>" line. Exactly two finite numbers
// are accepted.
func ParseParams(line string) (theta0, theta1 float64, err error) {
	fields := strings.Split(line, ",")
	if len(fields) != 2 {
		return 0, 0, errors.Newf("expected 2 comma-separated values, found %d", len(fields))
	}
	values := [2]float64{}
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return 0, 0, errors.Newf("field %d is not a number", i+1)
		}
		if !errors.IsFinite(v) {
			return 0, 0, errors.Newf("field %d is not finite", i+1)
		}
		values[i] = v
	}
	return values[0], values[1], nil
}
