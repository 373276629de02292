package duration

import (
	"fmt"
	"strconv"
)

// KnownLength is anything measurable in ticks, at 128 ticks per whole note.
type KnownLength interface {
	Ticks() uint32
}

// Basic is a plain power-of-two note value.
type Basic uint8

const (
	Whole Basic = iota
	Half
	Fourth
	Eighth
	Sixteenth
	ThirtySecond
	SixtyFourth
)

func (b Basic) Ticks() uint32 {
	switch b {
	case Whole:
		return 128
	case Half:
		return 64
	case Fourth:
		return 32
	case Eighth:
		return 16
	case Sixteenth:
		return 8
	case ThirtySecond:
		return 4
	default:
		return 2
	}
}

// Notation returns the digit the value is written as: 1 for a whole note
// down to 64 for a sixty-fourth.
func (b Basic) Notation() uint16 {
	switch b {
	case Whole:
		return 1
	case Half:
		return 2
	case Fourth:
		return 4
	case Eighth:
		return 8
	case Sixteenth:
		return 16
	case ThirtySecond:
		return 32
	default:
		return 64
	}
}

func (b Basic) String() string {
	return strconv.Itoa(int(b.Notation()))
}

// FromNotation maps a notation digit back to its note value. Only the seven
// values 1, 2, 4, 8, 16, 32 and 64 exist; anything else is an error, never a
// silent round to a neighbor.
func FromNotation(n uint16) (Basic, error) {
	switch n {
	case 1:
		return Whole, nil
	case 2:
		return Half, nil
	case 4:
		return Fourth, nil
	case 8:
		return Eighth, nil
	case 16:
		return Sixteenth, nil
	case 32:
		return ThirtySecond, nil
	case 64:
		return SixtyFourth, nil
	default:
		return 0, fmt.Errorf("%v is not a basic note value", n)
	}
}

// Modifier is a basic note value with an optional dot. A dot extends the
// value by half of itself.
type Modifier struct {
	Base Basic
	Dot  bool
}

func Plain(b Basic) Modifier {
	return Modifier{Base: b}
}

func Dotted(b Basic) Modifier {
	return Modifier{Base: b, Dot: true}
}

func (m Modifier) Ticks() uint32 {
	t := m.Base.Ticks()
	if m.Dot {
		return t + t/2
	}
	return t
}

// Form distinguishes the three shapes a Length can take.
type Form uint8

const (
	Simple Form = iota
	Tied
	Triplet
)

// Length is a full note length: a single modified value, two values tied
// into one sustain, or a triplet (three in the time of two, so the nominal
// value times 2/3).
type Length struct {
	Form Form
	Of   Modifier
	Tie  Modifier // second half of a tie, meaningful only when Form == Tied
}

func SimpleLength(m Modifier) Length {
	return Length{Form: Simple, Of: m}
}

func TiedLength(a, b Modifier) Length {
	return Length{Form: Tied, Of: a, Tie: b}
}

func TripletLength(m Modifier) Length {
	return Length{Form: Triplet, Of: m}
}

func (l Length) Ticks() uint32 {
	switch l.Form {
	case Tied:
		return l.Of.Ticks() + l.Tie.Ticks()
	case Triplet:
		return l.Of.Ticks() * 2 / 3
	default:
		return l.Of.Ticks()
	}
}

// Named lengths for the seven plain note values.
var (
	WholeNote        = SimpleLength(Plain(Whole))
	HalfNote         = SimpleLength(Plain(Half))
	FourthNote       = SimpleLength(Plain(Fourth))
	EighthNote       = SimpleLength(Plain(Eighth))
	SixteenthNote    = SimpleLength(Plain(Sixteenth))
	ThirtySecondNote = SimpleLength(Plain(ThirtySecond))
	SixtyFourthNote  = SimpleLength(Plain(SixtyFourth))
)
