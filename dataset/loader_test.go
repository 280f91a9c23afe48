package dataset_test

import (
	stdErrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/42-Course/ft-linear-regression/dataset"
	"github.com/42-Course/ft-linear-regression/pkg/errors"
	"github.com/42-Course/ft-linear-regression/pkg/log"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_ReadsFileSkippingHeader(t *testing.T) {
	path := writeFile(t, "km,price\n240000,3650\n139800,3800\n\n150500, 4400\n")
	testLogger, _ := log.NewTestLogger(log.LevelDebug)

	samples, err := dataset.NewLoader(path, dataset.WithLogger(testLogger)).Load()
	require.NoError(t, err)

	assert.Equal(t, []dataset.Sample{
		{X: 240000, Y: 3650},
		{X: 139800, Y: 3800},
		{X: 150500, Y: 4400},
	}, samples)
	assert.True(t, testLogger.ContainsField(log.SourceKey, "file"))
	assert.True(t, testLogger.ContainsField(log.SamplesKey, 3.0))
}

func TestLoader_HeaderOnly(t *testing.T) {
	path := writeFile(t, "km,price\n")

	samples, err := dataset.NewLoader(path).Load()
	require.NoError(t, err)
	assert.Empty(t, samples)
}

func TestLoader_FallbackWhenMissing(t *testing.T) {
	testLogger, _ := log.NewTestLogger(log.LevelDebug)

	var warnings []error
	errors.SetZerologWarnFunc(func(w error) { warnings = append(warnings, w) })
	defer errors.SetZerologWarnFunc(nil)

	missing := filepath.Join(t.TempDir(), "nope.csv")
	samples, err := dataset.NewLoader(missing, dataset.WithLogger(testLogger)).Load()
	require.NoError(t, err)

	assert.Equal(t, dataset.DefaultSamples(), samples)
	assert.Len(t, samples, 24)
	assert.True(t, testLogger.ContainsField(log.SourceKey, "builtin"))

	require.Len(t, warnings, 1)
	var fallback *errors.FallbackDatasetWarning
	require.True(t, errors.As(warnings[0], &fallback))
	assert.Equal(t, missing, fallback.Path)
	assert.Equal(t, 24, fallback.Samples)
}

func TestLoader_FallbackWhenNoPath(t *testing.T) {
	samples, err := dataset.NewLoader("").Load()
	require.NoError(t, err)
	assert.Len(t, samples, 24)
}

func TestLoader_FailClosed(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.csv")

	samples, err := dataset.NewLoader(missing, dataset.WithFailClosed(true)).Load()
	require.Error(t, err)
	assert.Nil(t, samples)

	var loadErr *errors.LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, missing, loadErr.Path)
	assert.True(t, stdErrors.Is(err, fs.ErrNotExist))
}

func TestLoader_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		line    int
		column  int
		value   string
	}{
		{"bad mileage", "km,price\n1000,2000\nabc,3000\n", 3, 1, "abc"},
		{"bad price", "km,price\n1000,2000\n2000,\n", 3, 2, ""},
		{"nan", "km,price\nNaN,2000\n", 2, 1, "NaN"},
		{"infinite", "km,price\n1000,+Inf\n", 2, 2, "+Inf"},
		{"single column", "km,price\n1000\n", 2, 2, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.content)

			t.Run("fallback", func(t *testing.T) {
				var warnings []error
				errors.SetZerologWarnFunc(func(w error) { warnings = append(warnings, w) })
				defer errors.SetZerologWarnFunc(nil)

				samples, err := dataset.NewLoader(path).Load()
				require.NoError(t, err)
				assert.Equal(t, dataset.DefaultSamples(), samples)

				require.Len(t, warnings, 1)
				var fallback *errors.FallbackDatasetWarning
				require.True(t, errors.As(warnings[0], &fallback))

				// position of the bad field survives in the cause
				var parseErr *errors.ParseError
				require.True(t, errors.As(fallback.Cause, &parseErr), "cause %T: %v", fallback.Cause, fallback.Cause)
				assert.Equal(t, tt.line, parseErr.Line)
				assert.Equal(t, tt.column, parseErr.Column)
			})

			t.Run("fail closed", func(t *testing.T) {
				samples, err := dataset.NewLoader(path, dataset.WithFailClosed(true)).Load()
				require.Error(t, err)
				assert.Nil(t, samples)

				var parseErr *errors.ParseError
				require.True(t, errors.As(err, &parseErr), "got %T: %v", err, err)
				assert.Equal(t, tt.line, parseErr.Line)
				assert.Equal(t, tt.column, parseErr.Column)
				assert.Equal(t, tt.value, parseErr.Value)
			})
		})
	}
}

func TestReadCSV(t *testing.T) {
	samples, err := dataset.ReadCSV(strings.NewReader("mileage,price,extra\n1.5e3,2e2,ignored\n-1,0\n"))
	require.NoError(t, err)
	assert.Equal(t, []dataset.Sample{{X: 1500, Y: 200}, {X: -1, Y: 0}}, samples)
}

func TestDefaultSamples_ReturnsCopy(t *testing.T) {
	a := dataset.DefaultSamples()
	a[0].X = -1

	b := dataset.DefaultSamples()
	assert.Equal(t, 240000.0, b[0].X)
	assert.Equal(t, dataset.Sample{X: 61789, Y: 8290}, b[len(b)-1])
}

func TestSplit(t *testing.T) {
	xs, ys := dataset.Split([]dataset.Sample{{X: 1, Y: 2}, {X: 3, Y: 4}})
	assert.Equal(t, []float64{1, 3}, xs)
	assert.Equal(t, []float64{2, 4}, ys)
}
