package meter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/greydoubt/polyrhythmix/constants"
	"github.com/greydoubt/polyrhythmix/duration"
)

// TimeSignature is a reference meter: Numerator counts of the Denominator
// note value per bar.
type TimeSignature struct {
	Numerator   uint8
	Denominator duration.Basic
}

func New(numerator uint8, denominator duration.Basic) TimeSignature {
	return TimeSignature{Numerator: numerator, Denominator: denominator}
}

// ParseTimeSignature reads the "4/4" form used on the command line.
func ParseTimeSignature(s string) (TimeSignature, error) {
	num, denom, ok := strings.Cut(s, "/")
	if !ok {
		return TimeSignature{}, fmt.Errorf("time signature %q: expected numerator/denominator", s)
	}
	n, err := strconv.ParseUint(num, 10, 8)
	if err != nil {
		return TimeSignature{}, fmt.Errorf("time signature %q: bad numerator: %v", s, err)
	}
	if n == 0 {
		return TimeSignature{}, fmt.Errorf("time signature %q: numerator must be positive", s)
	}
	d, err := strconv.ParseUint(denom, 10, 16)
	if err != nil {
		return TimeSignature{}, fmt.Errorf("time signature %q: bad denominator: %v", s, err)
	}
	b, err := duration.FromNotation(uint16(d))
	if err != nil {
		return TimeSignature{}, fmt.Errorf("time signature %q: %v", s, err)
	}
	return TimeSignature{Numerator: uint8(n), Denominator: b}, nil
}

func (ts TimeSignature) String() string {
	return fmt.Sprintf("%d/%v", ts.Numerator, ts.Denominator)
}

func (ts TimeSignature) Ticks() uint32 {
	return ts.Denominator.Ticks() * uint32(ts.Numerator)
}

// denominatorRank orders note values by their declaration order, whole
// note first. This is not the same thing as ordering by duration of the
// written digit: it ranks 16 above 4 even though a sixteenth is shorter.
var denominatorRank = map[duration.Basic]int{
	duration.Whole:        0,
	duration.Half:         1,
	duration.Fourth:       2,
	duration.Eighth:       3,
	duration.Sixteenth:    4,
	duration.ThirtySecond: 5,
	duration.SixtyFourth:  6,
}

// Compare orders time signatures by numerator, breaking ties by the
// denominator's declaration rank; it returns -1, 0 or 1. On a numerator
// tie the rank decides, which for some pairs is the inverse of comparing
// actual bar durations: 3/16 sorts below 4/4, while 4/4 sorts above 2/2.
// Long-standing behavior that downstream ordering depends on, kept as an
// explicit rule rather than an accident.
func (ts TimeSignature) Compare(other TimeSignature) int {
	if ts.Numerator != other.Numerator {
		if ts.Numerator < other.Numerator {
			return -1
		}
		return 1
	}
	a, b := denominatorRank[ts.Denominator], denominatorRank[other.Denominator]
	if a != b {
		if a < b {
			return -1
		}
		return 1
	}
	return 0
}

// ErrDoesNotConverge reports that the patterns would need at least the
// configured number of bars to phase-align again. Distinct from a parse
// failure; callers can pick it out with errors.Is.
var ErrDoesNotConverge = errors.New("does not converge")

// Converges returns how many bars of the reference meter it takes for
// every pattern to land on a bar boundary simultaneously, using the
// default limit.
func (ts TimeSignature) Converges(patterns ...duration.KnownLength) (uint32, error) {
	return ts.ConvergesWithin(constants.DefaultConvergenceLimit, patterns...)
}

// ConvergesWithin is Converges with an explicit bar limit: a result of
// limit bars or more is reported as ErrDoesNotConverge.
func (ts TimeSignature) ConvergesWithin(limit uint32, patterns ...duration.KnownLength) (uint32, error) {
	barTicks := ts.Ticks()
	acc := barTicks
	for _, p := range patterns {
		acc = lcm(p.Ticks(), acc)
	}
	bars := acc / barTicks
	if bars >= limit {
		return 0, ErrDoesNotConverge
	}
	return bars, nil
}

func gcd(a, b uint32) uint32 {
	c := a % b
	if c == 0 {
		return b
	}
	return gcd(b, c)
}

// lcm via gcd; same results as searching upward from max(a, b), with
// bounded cost.
func lcm(a, b uint32) uint32 {
	return a / gcd(a, b) * b
}
