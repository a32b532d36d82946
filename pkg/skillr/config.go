package skillr

import (
	"fmt"
	"math"
)

// Config bundles the model constants. It is read-only once built.
//
// Preconditions: Beta > 0, Tau >= 0, 0 <= PDraw < 1, EntropyRate >= 0.
// They are not checked by Rate or Probs; see Validate.
type Config struct {
	Loc   float64 `json:"loc"`   // prior location
	Scale float64 `json:"scale"` // prior scale
	// Beta is the per-match performance noise.
	Beta float64 `json:"beta"`
	// Tau is the process noise added back to the scale after every update.
	Tau float64 `json:"tau"`
	// PDraw sets the width of the draw margin.
	PDraw float64 `json:"p_draw"`
	// EntropyRate sets how fast the scale shrinks per unit of information gain.
	EntropyRate float64 `json:"entropy_rate"`
}

// DefaultConfig returns the documented default constants.
func DefaultConfig() Config {
	return Config{
		Loc:         DefaultLocation,
		Scale:       DefaultScale,
		Beta:        DefaultLocation / 6.0,
		Tau:         DefaultLocation / 300.0,
		PDraw:       0.1,
		EntropyRate: 0.1,
	}
}

// Rating returns the prior rating described by the config.
func (c Config) Rating() Rating {
	return NewRating(c.Loc, c.Scale)
}

// Validate reports whether c satisfies the model preconditions.
func (c Config) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"loc", c.Loc}, {"scale", c.Scale}, {"beta", c.Beta},
		{"tau", c.Tau}, {"p_draw", c.PDraw}, {"entropy_rate", c.EntropyRate},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidConfig, f.name)
		}
	}
	switch {
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale %v must be positive", ErrInvalidConfig, c.Scale)
	case c.Beta <= 0:
		return fmt.Errorf("%w: beta %v must be positive", ErrInvalidConfig, c.Beta)
	case c.Tau < 0:
		return fmt.Errorf("%w: tau %v must not be negative", ErrInvalidConfig, c.Tau)
	case c.PDraw < 0 || c.PDraw >= 1:
		return fmt.Errorf("%w: p_draw %v must be in [0, 1)", ErrInvalidConfig, c.PDraw)
	case c.EntropyRate < 0:
		return fmt.Errorf("%w: entropy_rate %v must not be negative", ErrInvalidConfig, c.EntropyRate)
	}
	return nil
}
