package duration

import "fmt"

// halfTicks is the unit Combine does its arithmetic in: a whole note is 64
// of them, a sixty-fourth is 1.
func (b Basic) halfTicks() uint16 {
	return uint16(b.Ticks() / 2)
}

func basicFromHalfTicks(n uint16) (Basic, error) {
	switch n {
	case 64:
		return Whole, nil
	case 32:
		return Half, nil
	case 16:
		return Fourth, nil
	case 8:
		return Eighth, nil
	case 4:
		return Sixteenth, nil
	case 2:
		return ThirtySecond, nil
	case 1:
		return SixtyFourth, nil
	default:
		return 0, fmt.Errorf("%d half-ticks is not a basic note value", n)
	}
}

// Combine algebraically sums two basic note values into a single length,
// independent of the notation's own tie syntax. Doubling anything shorter
// than a whole note promotes it to the next larger value. Every other pair
// becomes a tie of the largest value strictly below the sum and the
// remainder, with the first half capped at a whole note. Never produces a
// triplet.
//
// The remainder is always one of the seven basic values when the inputs
// are valid, so a failed lookup is an internal invariant violation and
// panics rather than surfacing as a caller error.
func Combine(a, b Basic) Length {
	if a == b && a != Whole {
		next, err := basicFromHalfTicks(a.halfTicks() * 2)
		if err != nil {
			panic("combine: doubling " + a.String() + ": " + err.Error())
		}
		return SimpleLength(Plain(next))
	}

	total := a.halfTicks() + b.halfTicks()
	head := SixtyFourth
	if total > 64 {
		head = Whole
	} else {
		for _, c := range [...]Basic{Whole, Half, Fourth, Eighth, Sixteenth, ThirtySecond} {
			if c.halfTicks() < total {
				head = c
				break
			}
		}
	}
	rest, err := basicFromHalfTicks(total - head.halfTicks())
	if err != nil {
		panic("combine: " + a.String() + " and " + b.String() + ": " + err.Error())
	}
	return TiedLength(Plain(head), Plain(rest))
}
