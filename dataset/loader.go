package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/42-Course/ft-linear-regression/pkg/errors"
	"github.com/42-Course/ft-linear-regression/pkg/log"
)

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFailClosed disables the built-in fallback: an unreadable source
// becomes a LoadError.
func WithFailClosed(failClosed bool) LoaderOption {
	return func(l *Loader) {
		l.failClosed = failClosed
	}
}

// WithLogger sets the logger used to report fallbacks.
func WithLogger(logger log.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// Loader reads samples from a CSV file.
type Loader struct {
	path       string
	failClosed bool
	logger     log.Logger
}

// NewLoader creates a loader for the CSV at path. An empty path means no
// source is configured.
func NewLoader(path string, opts ...LoaderOption) *Loader {
	l := &Loader{
		path:   path,
		logger: log.GetLoggerWithName("dataset"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Path returns the configured source location.
func (l *Loader) Path() string {
	return l.path
}

// Load reads the configured source. See the package documentation for the
// fallback rules.
func (l *Loader) Load() (samples []Sample, err error) {
	defer errors.Recover(&err, "Loader.Load")

	f, err := l.open()
	if err != nil {
		return l.unavailable(err)
	}
	defer func() { _ = f.Close() }()

	samples, err = ReadCSV(f)
	if err != nil {
		var parseErr *errors.ParseError
		if errors.As(err, &parseErr) {
			l.logger.Error("Malformed dataset", err,
				log.OperationKey, log.OperationLoad,
				log.PathKey, l.path,
			)
			if l.failClosed {
				return nil, err
			}
		}
		return l.unavailable(err)
	}

	l.logger.Info("Dataset loaded",
		log.OperationKey, log.OperationLoad,
		log.SourceKey, "file",
		log.PathKey, l.path,
		log.SamplesKey, len(samples),
	)
	return samples, nil
}

// unavailable applies the fallback policy to a source that cannot be read or
// parsed. A ParseError never reaches it in fail-closed mode.
func (l *Loader) unavailable(cause error) ([]Sample, error) {
	if l.failClosed {
		l.logger.Error("Dataset unavailable", cause,
			log.OperationKey, log.OperationLoad,
			log.PathKey, l.path,
		)
		return nil, errors.NewLoadError(l.path, cause)
	}

	samples := DefaultSamples()
	errors.Warn(errors.NewFallbackDatasetWarning(l.path, len(samples), cause))
	l.logger.Info("Dataset loaded",
		log.OperationKey, log.OperationLoad,
		log.SourceKey, "builtin",
		log.SamplesKey, len(samples),
	)
	return samples, nil
}

func (l *Loader) open() (*os.File, error) {
	if l.path == "" {
		return nil, errors.New("no dataset path configured")
	}
	f, err := os.Open(l.path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return f, nil
}

// ReadCSV parses samples from r. The first record is a header and is
// skipped; every other record needs at least two fields holding finite real
// numbers. The first bad field aborts the read with a ParseError.
func ReadCSV(r io.Reader) ([]Sample, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var samples []Sample
	header := true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				return nil, errors.NewParseError(csvErr.Line, csvErr.Column, "", csvErr.Err)
			}
			return nil, errors.Wrap(err, "reading dataset")
		}
		if header {
			header = false
			continue
		}
		line, _ := reader.FieldPos(0)
		if len(record) < 2 {
			return nil, errors.NewParseError(line, len(record)+1, "", errors.New("missing column"))
		}

		x, err := parseField(record[0], line, 1)
		if err != nil {
			return nil, err
		}
		y, err := parseField(record[1], line, 2)
		if err != nil {
			return nil, err
		}
		samples = append(samples, Sample{X: x, Y: y})
	}
	return samples, nil
}

func parseField(field string, line, column int) (float64, error) {
	value := strings.TrimSpace(field)
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.NewParseError(line, column, value, err)
	}
	if !errors.IsFinite(v) {
		return 0, errors.NewParseError(line, column, value, errors.New("not a finite number"))
	}
	return v, nil
}
