package pattern

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/greydoubt/polyrhythmix/duration"
)

// ParseError is a recoverable parse failure. Input holds the unconsumed
// text starting at the first byte the parser could not make sense of.
// Escalating to a hard failure is the caller's decision.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %q: %s", e.Input, e.Reason)
}

func fail(input, reason string) *ParseError {
	return &ParseError{Input: input, Reason: reason}
}

// Each parse function consumes a prefix of its input and returns the value
// plus the rest, left to right with no backtracking past a consumed group.

func parseDigits(in string) (uint16, string, error) {
	i := 0
	for i < len(in) && in[i] >= '0' && in[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, in, fail(in, "expected digits")
	}
	n, err := strconv.ParseUint(in[:i], 10, 16)
	if err != nil {
		return 0, in, fail(in, "number out of range")
	}
	return uint16(n), in[i:], nil
}

func parseBasic(in string) (duration.Basic, string, error) {
	n, rest, err := parseDigits(in)
	if err != nil {
		return 0, in, err
	}
	b, err := duration.FromNotation(n)
	if err != nil {
		return 0, in, fail(in, err.Error())
	}
	return b, rest, nil
}

// dotted is tried before plain, so the dot always binds to the value.
func parseModifier(in string) (duration.Modifier, string, error) {
	b, rest, err := parseBasic(in)
	if err != nil {
		return duration.Modifier{}, in, err
	}
	if strings.HasPrefix(rest, ".") {
		return duration.Dotted(b), rest[1:], nil
	}
	return duration.Plain(b), rest, nil
}

// triplet is tried before tied before plain, so "4.t" is a dotted-fourth
// triplet and "8+16" is a tie, never a value followed by stray tokens.
func parseLength(in string) (duration.Length, string, error) {
	m, rest, err := parseModifier(in)
	if err != nil {
		return duration.Length{}, in, err
	}
	if strings.HasPrefix(rest, "t") {
		return duration.TripletLength(m), rest[1:], nil
	}
	if strings.HasPrefix(rest, "+") {
		tie, rest2, err := parseModifier(rest[1:])
		if err != nil {
			return duration.Length{}, in, err
		}
		return duration.TiedLength(m, tie), rest2, nil
	}
	return duration.SimpleLength(m), rest, nil
}

func parseNote(in string) (Note, string, error) {
	if strings.HasPrefix(in, "x") {
		return Hit, in[1:], nil
	}
	if strings.HasPrefix(in, "-") {
		return Rest, in[1:], nil
	}
	return 0, in, fail(in, "expected a note, x or -")
}

func parseGroup(in string) (Group, string, error) {
	// an "N," prefix sets the repeat count; absent means once
	times := Times(1)
	rest := in
	if n, r, err := parseDigits(in); err == nil && strings.HasPrefix(r, ",") {
		if n == 0 {
			return Group{}, in, fail(in, "repeat count must be at least 1")
		}
		times = Times(n)
		rest = r[1:]
	}

	length, rest, err := parseLength(rest)
	if err != nil {
		return Group{}, in, err
	}

	var notes []GroupOrNote
	for {
		n, r, err := parseNote(rest)
		if err != nil {
			break
		}
		notes = append(notes, SingleNote(n))
		rest = r
	}
	if len(notes) == 0 {
		return Group{}, in, fail(rest, "expected at least one note")
	}
	return Group{Notes: notes, Length: length, Times: times}, rest, nil
}

// Parentheses only delimit a group against surrounding text; a delimited
// group means exactly the same as its bare form.
func parseGroupOrDelimited(in string) (Group, string, error) {
	if strings.HasPrefix(in, "(") {
		g, rest, err := parseGroup(in[1:])
		if err != nil {
			return Group{}, in, err
		}
		if !strings.HasPrefix(rest, ")") {
			return Group{}, in, fail(rest, "expected closing parenthesis")
		}
		return g, rest[1:], nil
	}
	return parseGroup(in)
}

// ParseGroups parses one or more top-level groups greedily until the input
// is exhausted, preserving their order along the timeline. Anything left
// over that does not start another group is a failure; there are no
// partial results.
func ParseGroups(in string) (Groups, error) {
	var gs Groups
	rest := in
	for rest != "" {
		g, r, err := parseGroupOrDelimited(rest)
		if err != nil {
			return nil, err
		}
		gs = append(gs, g)
		rest = r
	}
	if len(gs) == 0 {
		return nil, fail(in, "expected at least one group")
	}
	return gs, nil
}
