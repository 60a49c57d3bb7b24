package advanced

import (
	"fmt"

	"github.com/pkg/errors"
)

// The equilibrium search nests three scalar solves: area as a function of
// draft, GZ as a function of heel angle, and the sweep over the whole curve.
// Threading error returns through every scalar closure would complicate all
// of them. Instead, the solvers panic with a HydrostaticError, and the public
// API recovers to convert it to an error.

// hydrostaticError marks a panic raised by throw or fatalf. The marker is a
// concrete type so that only deliberately thrown values convert back to
// errors at the boundary; a genuine panic, runtime errors included, is not
// swallowed just because its value implements error.
type hydrostaticError struct {
	err error
}

// SinkingError reports that no draft within the search bracket displaces the
// target area: the hull cannot float at this load. It is a modeling
// conclusion, not a numerical failure.
type SinkingError struct {
	TargetArea float64
}

func (e *SinkingError) Error() string {
	return fmt.Sprintf("ship is sinking: no draft displaces area %g", e.TargetArea)
}

func throw(err error) {
	panic(hydrostaticError{err: err})
}

// Panic with a thrown error.
func fatalf(format string, args ...interface{}) {
	throw(errors.Errorf(format, args...))
}

func HandleHydrostaticPanicRecover(r interface{}) error {
	if r != nil {
		if thrown, ok := r.(hydrostaticError); ok {
			return thrown.err
		}
		panic(r)
	}
	return nil
}
