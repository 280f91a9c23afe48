// Package model holds the bookkeeping shared by estimators: fitted state and
// the on-disk parameter store.
package model

// StateManager tracks whether an estimator has been trained and on how much
// data. It is not safe for concurrent use; estimators in this module are
// single-threaded.
type StateManager struct {
	fitted   bool
	nSamples int
	steps    int
}

// NewStateManager creates a new StateManager instance.
func NewStateManager() *StateManager {
	return &StateManager{}
}

// IsFitted returns whether the model has been fitted.
func (s *StateManager) IsFitted() bool {
	return s.fitted
}

// RecordSteps adds n completed training steps. Any positive count marks the
// model as fitted.
func (s *StateManager) RecordSteps(n int) {
	if n <= 0 {
		return
	}
	s.steps += n
	s.fitted = true
}

// Steps returns the number of training steps recorded so far.
func (s *StateManager) Steps() int {
	return s.steps
}

// SetSamples records the number of samples the model holds.
func (s *StateManager) SetSamples(n int) {
	s.nSamples = n
}

// Samples returns the number of samples the model holds.
func (s *StateManager) Samples() int {
	return s.nSamples
}

// ModelState is a snapshot of the fitted state, handy for logging.
type ModelState struct {
	Fitted   bool `json:"fitted"`
	NSamples int  `json:"n_samples"`
	Steps    int  `json:"steps"`
}

// GetState returns the current state as a ModelState struct.
func (s *StateManager) GetState() ModelState {
	return ModelState{
		Fitted:   s.fitted,
		NSamples: s.nSamples,
		Steps:    s.steps,
	}
}
