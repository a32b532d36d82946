package skillr

import (
	"fmt"
	"strings"
)

// Outcome is a match result seen from one competitor's side.
// The zero value is not a valid outcome.
type Outcome uint8

const (
	Win Outcome = iota + 1
	Draw
	Loss
)

// Invert returns the same result seen from the opponent's side.
func (o Outcome) Invert() Outcome {
	switch o {
	case Win:
		return Loss
	case Loss:
		return Win
	default:
		return o
	}
}

// Int encodes the outcome as 1, 0 or -1.
func (o Outcome) Int() int8 {
	switch o {
	case Win:
		return 1
	case Loss:
		return -1
	default:
		return 0
	}
}

func (o Outcome) String() string {
	switch o {
	case Win:
		return "Win"
	case Draw:
		return "Draw"
	case Loss:
		return "Loss"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// Validate reports whether o is one of Win, Draw or Loss.
func (o Outcome) Validate() error {
	switch o {
	case Win, Draw, Loss:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrInvalidOutcome, uint8(o))
	}
}

// ParseOutcome parses labels such as "win", "W", "1", "draw", "loss" or "-1".
func ParseOutcome(s string) (Outcome, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "win", "w", "1", "+1":
		return Win, nil
	case "draw", "d", "0":
		return Draw, nil
	case "loss", "lose", "l", "-1":
		return Loss, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidOutcome, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Outcome) UnmarshalText(text []byte) error {
	v, err := ParseOutcome(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}
