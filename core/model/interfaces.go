package model

// ParamHolder is implemented by models whose whole learned state is an
// intercept and a slope.
type ParamHolder interface {
	// Params returns the intercept and the slope.
	Params() (theta0, theta1 float64)

	// SetParams overwrites both parameters.
	SetParams(theta0, theta1 float64)
}
