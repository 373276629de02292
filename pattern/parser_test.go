package pattern

import (
	"testing"

	"github.com/greydoubt/polyrhythmix/duration"
	"github.com/stretchr/testify/assert"
)

func hits(notes string) []GroupOrNote {
	var res []GroupOrNote
	for _, c := range notes {
		if c == 'x' {
			res = append(res, SingleNote(Hit))
		} else {
			res = append(res, SingleNote(Rest))
		}
	}
	return res
}

func TestParseLength(t *testing.T) {
	cases := []struct {
		input string
		want  duration.Length
	}{
		{"16", duration.SixteenthNote},
		{"8+16", duration.TiedLength(duration.Plain(duration.Eighth), duration.Plain(duration.Sixteenth))},
		{"8t", duration.TripletLength(duration.Plain(duration.Eighth))},
		{"4.t", duration.TripletLength(duration.Dotted(duration.Fourth))},
		{"2.", duration.SimpleLength(duration.Dotted(duration.Half))},
		{"4.+16", duration.TiedLength(duration.Dotted(duration.Fourth), duration.Plain(duration.Sixteenth))},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			got, rest, err := parseLength(c.input)
			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal("", rest)
			assert.Equal(c.want, got)
		})
	}
}

func TestParseLengthRejectsForeignDigits(t *testing.T) {
	for _, input := range []string{"3", "5", "128", "0"} {
		_, _, err := parseLength(input)
		assert.Error(t, err, "length %q", input)
	}
}

func TestParseGroup(t *testing.T) {
	assert := assert.New(t)

	g, rest, err := parseGroup("16x--x-")
	assert.NoError(err)
	assert.Equal("", rest)
	assert.Equal(Group{Notes: hits("x--x-"), Length: duration.SixteenthNote, Times: 1}, g)

	g, rest, err = parseGroup("8txxx")
	assert.NoError(err)
	assert.Equal("", rest)
	assert.Equal(Group{
		Notes:  hits("xxx"),
		Length: duration.TripletLength(duration.Plain(duration.Eighth)),
		Times:  1,
	}, g)

	g, rest, err = parseGroup("16+32x-xx")
	assert.NoError(err)
	assert.Equal("", rest)
	assert.Equal(Group{
		Notes:  hits("x-xx"),
		Length: duration.TiedLength(duration.Plain(duration.Sixteenth), duration.Plain(duration.ThirtySecond)),
		Times:  1,
	}, g)

	g, rest, err = parseGroup("3,16xx")
	assert.NoError(err)
	assert.Equal("", rest)
	assert.Equal(Group{Notes: hits("xx"), Length: duration.SixteenthNote, Times: 3}, g)
}

func TestParseGroupFailures(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"foreign digit", "3x"},
		{"no notes", "16"},
		{"zero repeat count", "0,16x"},
		{"empty", ""},
		{"note before length", "x16"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := parseGroup(c.input)
			assert.Error(t, err)
		})
	}
}

func TestParseDelimitedGroup(t *testing.T) {
	assert := assert.New(t)

	bare, rest, err := parseGroupOrDelimited("3,16x--x-")
	assert.NoError(err)
	assert.Equal("", rest)

	wrapped, rest, err := parseGroupOrDelimited("(3,16x--x-)")
	assert.NoError(err)
	assert.Equal("", rest)

	// parentheses carry no meaning of their own
	assert.Equal(bare, wrapped)
	assert.Equal(Group{Notes: hits("x--x-"), Length: duration.SixteenthNote, Times: 3}, wrapped)

	_, _, err = parseGroupOrDelimited("(16x")
	assert.Error(err)
}

func TestParseGroups(t *testing.T) {
	assert := assert.New(t)

	gs, err := ParseGroups("16x-xx-x-8txxx(3,16+32x-xx)4x-x-")
	assert.NoError(err)
	assert.Len(gs, 4)
	assert.Equal(Group{Notes: hits("x-xx-x-"), Length: duration.SixteenthNote, Times: 1}, gs[0])
	assert.Equal(Group{
		Notes:  hits("xxx"),
		Length: duration.TripletLength(duration.Plain(duration.Eighth)),
		Times:  1,
	}, gs[1])
	assert.Equal(Group{
		Notes:  hits("x-xx"),
		Length: duration.TiedLength(duration.Plain(duration.Sixteenth), duration.Plain(duration.ThirtySecond)),
		Times:  3,
	}, gs[2])
	assert.Equal(Group{Notes: hits("x-x-"), Length: duration.FourthNote, Times: 1}, gs[3])
}

func TestParseGroupsRejectsLeftover(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseGroups("16xq")
	assert.Error(err)

	var perr *ParseError
	assert.ErrorAs(err, &perr)
	assert.Equal("q", perr.Input)

	_, err = ParseGroups("")
	assert.Error(err)
}
