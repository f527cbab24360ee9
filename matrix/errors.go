package matrix

import (
	"errors"
	"math"
)

var (
	// ErrInvalidArgument reports a precondition violation such as a non-positive
	// near plane or a singular matrix.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDegenerateConfiguration reports a camera whose basis cannot be built.
	ErrDegenerateConfiguration = errors.New("degenerate configuration")
)

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
