package duration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allBasics = []Basic{Whole, Half, Fourth, Eighth, Sixteenth, ThirtySecond, SixtyFourth}

func TestBasicTicks(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint32(128), Whole.Ticks())
	assert.Equal(uint32(64), Half.Ticks())
	assert.Equal(uint32(32), Fourth.Ticks())
	assert.Equal(uint32(16), Eighth.Ticks())
	assert.Equal(uint32(8), Sixteenth.Ticks())
	assert.Equal(uint32(4), ThirtySecond.Ticks())
	assert.Equal(uint32(2), SixtyFourth.Ticks())
}

func TestDottedTicks(t *testing.T) {
	assert := assert.New(t)
	for _, b := range allBasics {
		assert.Equal(Plain(b).Ticks()*3/2, Dotted(b).Ticks(), "dotted %v", b)
	}
}

func TestTiedTicks(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint32(24), TiedLength(Plain(Eighth), Plain(Sixteenth)).Ticks())
	assert.Equal(uint32(192), TiedLength(Plain(Whole), Plain(Half)).Ticks())
	assert.Equal(uint32(28), TiedLength(Dotted(Eighth), Plain(ThirtySecond)).Ticks())
	for _, a := range allBasics {
		for _, b := range allBasics {
			got := TiedLength(Plain(a), Dotted(b)).Ticks()
			assert.Equal(Plain(a).Ticks()+Dotted(b).Ticks(), got)
		}
	}
}

func TestTripletTicks(t *testing.T) {
	assert := assert.New(t)
	for _, b := range allBasics {
		assert.Equal(Plain(b).Ticks()*2/3, TripletLength(Plain(b)).Ticks(), "triplet %v", b)
		assert.Equal(Dotted(b).Ticks()*2/3, TripletLength(Dotted(b)).Ticks(), "dotted triplet %v", b)
	}
	// the canonical case: three eighth triplets fill one fourth... almost.
	// 16 * 2 / 3 truncates to 10.
	assert.Equal(uint32(10), TripletLength(Plain(Eighth)).Ticks())
}

func TestFromNotation(t *testing.T) {
	assert := assert.New(t)
	for _, b := range allBasics {
		got, err := FromNotation(b.Notation())
		assert.NoError(err)
		assert.Equal(b, got)
	}
	for _, n := range []uint16{0, 3, 5, 6, 7, 12, 65, 128} {
		_, err := FromNotation(n)
		assert.Error(err, "notation %d", n)
	}
}

func TestCombine(t *testing.T) {
	assert := assert.New(t)

	// doubling promotes to the next value up
	assert.Equal(WholeNote, Combine(Half, Half))
	assert.Equal(FourthNote, Combine(Eighth, Eighth))
	assert.Equal(ThirtySecondNote, Combine(SixtyFourth, SixtyFourth))

	// a whole note has nothing to promote to
	assert.Equal(TiedLength(Plain(Whole), Plain(Whole)), Combine(Whole, Whole))

	// mixed pairs become ties of the largest fit plus the remainder
	assert.Equal(TiedLength(Plain(Half), Plain(SixtyFourth)), Combine(Half, SixtyFourth))
	assert.Equal(TiedLength(Plain(Fourth), Plain(Eighth)), Combine(Fourth, Eighth))
	assert.Equal(TiedLength(Plain(ThirtySecond), Plain(SixtyFourth)), Combine(ThirtySecond, SixtyFourth))

	// order of operands never matters
	for _, a := range allBasics {
		for _, b := range allBasics {
			assert.Equal(Combine(a, b), Combine(b, a))
			assert.Equal(Plain(a).Ticks()+Plain(b).Ticks(), Combine(a, b).Ticks())
		}
	}
}
