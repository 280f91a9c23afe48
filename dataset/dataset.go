// Package dataset loads the (mileage, price) samples the regression engine
// trains on.
//
// A Loader reads a comma-separated file whose first row is a header and whose
// remaining rows hold two real numbers. When the file cannot be opened or a
// row is malformed the loader substitutes a fixed set of 24 samples so a
// first run works without any data on disk. The cause travels in a
// FallbackDatasetWarning. Loaders built WithFailClosed(true) surface the
// failure instead: a LoadError for an unreadable source, the ParseError for
// a bad row.
package dataset

// Sample is one observation: X is the mileage in km, Y the price.
type Sample struct {
	X float64
	Y float64
}

// defaultSamples is the built-in fallback set, in file order.
var defaultSamples = [...]Sample{
	{240000, 3650},
	{139800, 3800},
	{150500, 4400},
	{185530, 4450},
	{176000, 5250},
	{114800, 5350},
	{166800, 5800},
	{89000, 5990},
	{144500, 5999},
	{84000, 6200},
	{82029, 6390},
	{63060, 6390},
	{74000, 6600},
	{97500, 6800},
	{67000, 6800},
	{76025, 6900},
	{48235, 6900},
	{93000, 6990},
	{60949, 7490},
	{65674, 7555},
	{54000, 7990},
	{68500, 7990},
	{22899, 7990},
	{61789, 8290},
}

// DefaultSamples returns a fresh copy of the built-in fallback samples.
func DefaultSamples() []Sample {
	out := make([]Sample, len(defaultSamples))
	copy(out, defaultSamples[:])
	return out
}

// Split returns the X and Y columns of samples.
func Split(samples []Sample) (xs, ys []float64) {
	xs = make([]float64, len(samples))
	ys = make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = s.X
		ys[i] = s.Y
	}
	return xs, ys
}
