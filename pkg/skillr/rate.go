package skillr

import (
	"fmt"
	"math"
)

// entropyOffset is added to ln(scale) to form the entropy proxy of a belief.
const entropyOffset = 2.0

// Step describes how one competitor's rating moved in a match.
type Step struct {
	Before Rating
	After  Rating
	// Probability is what the model gave the realized outcome.
	Probability float64
	// Expectation is the predicted outcome value, win minus loss probability.
	Expectation float64
	// InformationGain is -ln(Probability).
	InformationGain float64
	// Gain is this competitor's share of the combined variance.
	Gain float64
}

// Match is the full result of rating one pairwise outcome.
type Match struct {
	Outcome Outcome // from competitor 1's side
	// Spread is the combined uncertainty of the pairing.
	Spread        float64
	Probabilities Probabilities // from competitor 1's side
	First         Step
	Second        Step
}

// Ratings returns both updated ratings in input order.
func (m Match) Ratings() (Rating, Rating) {
	return m.First.After, m.Second.After
}

// Rate returns the updated ratings of r1 and r2 after outcome, which is
// stated from r1's side.
func Rate(r1, r2 Rating, outcome Outcome, cfg Config) (Rating, Rating) {
	return Evaluate(r1, r2, outcome, cfg).Ratings()
}

// Evaluate performs the same update as Rate and keeps the intermediate terms.
// It panics if outcome is not Win, Draw or Loss.
func Evaluate(r1, r2 Rating, outcome Outcome, cfg Config) Match {
	sDiff := spread(r1, r2, cfg)
	ps := probs(r1.Location-r2.Location, sDiff, cfg)
	return Match{
		Outcome:       outcome,
		Spread:        sDiff,
		Probabilities: ps,
		First:         update(r1, sDiff, ps, outcome, cfg),
		Second:        update(r2, sDiff, ps.Reverse(), outcome.Invert(), cfg),
	}
}

// update applies the rule to one competitor. ps and outcome must both be
// oriented to self.
func update(self Rating, sDiff float64, ps Probabilities, outcome Outcome, cfg Config) Step {
	var o float64
	switch outcome {
	case Win:
		o = 1
	case Draw:
		o = 0
	case Loss:
		o = -1
	default:
		panic(fmt.Sprintf("skillr: %v is not a valid outcome", outcome))
	}
	p := ps.Of(outcome)
	expectation := ps.Expectation()
	infoGain := -math.Log(p)
	k := (self.Scale * self.Scale) / (sDiff * sDiff)

	scale := shrinkScale(self.Scale, infoGain, cfg.EntropyRate)
	return Step{
		Before: self,
		After: Rating{
			Location: self.Location + k*(o-expectation),
			Scale:    math.Sqrt(scale*scale + cfg.Tau*cfg.Tau),
		},
		Probability:     p,
		Expectation:     expectation,
		InformationGain: infoGain,
		Gain:            k,
	}
}

// shrinkScale lowers the entropy proxy ln(scale)+2 by rate*infoGain and maps
// it back to a scale.
func shrinkScale(scale, infoGain, rate float64) float64 {
	entropy := math.Log(scale) + entropyOffset
	return math.Exp(entropy - rate*infoGain - entropyOffset)
}

// Validate reports ErrNonFinite when either updated rating is not finite or
// has collapsed to a zero scale.
func (m Match) Validate() error {
	for i, s := range []Step{m.First, m.Second} {
		r := s.After
		if math.IsNaN(r.Location) || math.IsInf(r.Location, 0) ||
			math.IsNaN(r.Scale) || math.IsInf(r.Scale, 0) || r.Scale <= 0 {
			return fmt.Errorf("%w: competitor %d rated %v", ErrNonFinite, i+1, r)
		}
	}
	return nil
}
