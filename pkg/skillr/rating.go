// Package skillr implements a Bayesian online rating model for pairwise
// matches. A competitor's skill is a Gaussian belief (location, scale); after
// each win, draw or loss the location moves toward the observed result and the
// scale shrinks by the information the outcome carried.
//
// All functions are pure and safe for concurrent use. Inputs are not
// validated on the rating path: ratings must have a strictly positive scale
// and the configuration a strictly positive Beta. Callers that want checks
// use the Validate methods.
package skillr

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Default prior.
const (
	DefaultLocation = 25.0
	DefaultScale    = DefaultLocation / 3.0
)

// Rating is a competitor's skill belief.
type Rating struct {
	// Location is the mean skill estimate.
	Location float64 `json:"location"`
	// Scale is the standard deviation of the belief; must stay > 0.
	Scale float64 `json:"scale"`
}

// NewRating returns a Rating with the given location and scale.
func NewRating(location, scale float64) Rating {
	return Rating{Location: location, Scale: scale}
}

// DefaultRating returns the default prior {25, 25/3}.
func DefaultRating() Rating {
	return NewRating(DefaultLocation, DefaultScale)
}

// Dist returns the belief as a normal distribution.
func (r Rating) Dist() distuv.Normal {
	return distuv.Normal{Mu: r.Location, Sigma: r.Scale}
}

// Interval returns the central credible interval holding the given share of
// the belief, e.g. 0.95. Levels outside [0, 1] yield NaN bounds.
func (r Rating) Interval(level float64) (lo, hi float64) {
	if math.IsNaN(level) || level < 0 || level > 1 {
		return math.NaN(), math.NaN()
	}
	d := r.Dist()
	tail := (1 - level) / 2
	return d.Quantile(tail), d.Quantile(1 - tail)
}

// Conservative returns Location - k*Scale, a skill estimate the competitor
// is unlikely to be below.
func (r Rating) Conservative(k float64) float64 {
	return r.Location - k*r.Scale
}

// Validate reports whether r satisfies the rating preconditions.
func (r Rating) Validate() error {
	if math.IsNaN(r.Location) || math.IsInf(r.Location, 0) {
		return fmt.Errorf("%w: location %v is not finite", ErrInvalidRating, r.Location)
	}
	if math.IsNaN(r.Scale) || math.IsInf(r.Scale, 0) || r.Scale <= 0 {
		return fmt.Errorf("%w: scale %v must be finite and positive", ErrInvalidRating, r.Scale)
	}
	return nil
}

func (r Rating) String() string {
	return fmt.Sprintf("%.4f±%.4f", r.Location, r.Scale)
}
