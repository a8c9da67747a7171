package solver

import "errors"

var (
	// ErrNotConverged indicates that a root search could not bracket a sign
	// change or ran out of iterations before meeting the accuracy.
	ErrNotConverged = errors.New("solver: solution not converged")
)
