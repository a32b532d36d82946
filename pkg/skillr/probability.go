package skillr

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// probabilityTolerance bounds how far a probability triple may drift from a
// total of one.
const probabilityTolerance = 1e-9

// Probabilities holds the win, draw and loss probabilities of one competitor,
// in that order.
type Probabilities [3]float64

// Win returns the probability of a win.
func (p Probabilities) Win() float64 { return p[0] }

// Draw returns the probability of a draw.
func (p Probabilities) Draw() float64 { return p[1] }

// Loss returns the probability of a loss.
func (p Probabilities) Loss() float64 { return p[2] }

// Reverse returns the same probabilities seen from the opponent's side.
func (p Probabilities) Reverse() Probabilities {
	return Probabilities{p[2], p[1], p[0]}
}

// Expectation is the expected outcome value in [-1, 1].
func (p Probabilities) Expectation() float64 {
	return p[0] - p[2]
}

// Of returns the probability assigned to outcome o.
func (p Probabilities) Of(o Outcome) float64 {
	switch o {
	case Win:
		return p[0]
	case Draw:
		return p[1]
	case Loss:
		return p[2]
	default:
		return math.NaN()
	}
}

// Validate checks that every entry lies in [0, 1] and that they sum to one.
func (p Probabilities) Validate() error {
	sum := 0.0
	for i, v := range p {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("%w: entry %d is %v", ErrInvalidProbabilities, i, v)
		}
		sum += v
	}
	if !scalar.EqualWithinAbs(sum, 1, probabilityTolerance) {
		return fmt.Errorf("%w: sum is %v", ErrInvalidProbabilities, sum)
	}
	return nil
}

// Probs returns the win, draw and loss probabilities of r1 against r2.
func Probs(r1, r2 Rating, cfg Config) Probabilities {
	return probs(r1.Location-r2.Location, spread(r1, r2, cfg), cfg)
}

// spread is the combined uncertainty of a pairing, inflated by the
// performance noise of both sides.
func spread(r1, r2 Rating, cfg Config) float64 {
	return math.Sqrt(r1.Scale*r1.Scale + r2.Scale*r2.Scale + 2*cfg.Beta*cfg.Beta)
}

// probs evaluates the logistic draw-margin model. A performance gap above
// +PDraw is a win, below -PDraw a loss, anything in between a draw.
func probs(dLoc, sDiff float64, cfg Config) Probabilities {
	z := fd(cfg.PDraw, dLoc, sDiff)
	lose := fd(-cfg.PDraw, dLoc, sDiff)
	return Probabilities{1 - z, z - lose, lose}
}

func fd(x, dLoc, sDiff float64) float64 {
	return sigmoid((x - dLoc) / sDiff)
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
