package skillr

import (
	"errors"
)

// Sentinel error kinds returned by the Validate helpers. The rating functions
// themselves never return errors.
var (
	ErrInvalidRating        = errors.New("invalid rating")
	ErrInvalidConfig        = errors.New("invalid config")
	ErrInvalidOutcome       = errors.New("invalid outcome")
	ErrInvalidProbabilities = errors.New("invalid probabilities")
	ErrNonFinite            = errors.New("non-finite result")
)
