package analysis

import "fmt"

// InvalidTrajectoryError reports a trajectory that violates the ordering
// invariant required by the metric pipeline: strictly increasing timestamps.
// Short trajectories (fewer than two samples) are not an error; they yield
// zero-valued metrics.
type InvalidTrajectoryError struct {
	Index  int // index of the offending sample, -1 if not tied to one
	Reason string
}

// Error implements the error interface
func (e *InvalidTrajectoryError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid trajectory at sample %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("invalid trajectory: %s", e.Reason)
}
