package pattern

import "github.com/greydoubt/polyrhythmix/duration"

// Note is an atomic onset or silence.
type Note uint8

const (
	Hit Note = iota
	Rest
)

func (n Note) String() string {
	if n == Hit {
		return "x"
	}
	return "-"
}

// Times is how many times a group's total duration is played in sequence.
// Always at least 1.
type Times uint16

// GroupOrNote is one child slot of a Group: either a nested subgroup or a
// single leaf note. Sub is nil for leaves.
type GroupOrNote struct {
	Sub  *Group
	Note Note
}

func SingleNote(n Note) GroupOrNote {
	return GroupOrNote{Note: n}
}

func SingleGroup(g Group) GroupOrNote {
	return GroupOrNote{Sub: &g}
}

// Group is an ordered, non-empty run of notes sharing one length, repeated
// Times times. Leaf children all sound for Length; nested subgroups carry
// their own lengths. Groups are built once by the parser or by a caller and
// never mutated after.
type Group struct {
	Notes  []GroupOrNote
	Length duration.Length
	Times  Times
}

func (g Group) Ticks() uint32 {
	var acc uint32
	unit := g.Length.Ticks()
	for _, n := range g.Notes {
		if n.Sub != nil {
			acc += n.Sub.Ticks()
		} else {
			acc += unit
		}
	}
	return acc * uint32(g.Times)
}

// Groups is one drum part's top-level groups in performance order along the
// timeline.
type Groups []Group

func (gs Groups) Ticks() uint32 {
	var acc uint32
	for _, g := range gs {
		acc += g.Ticks()
	}
	return acc
}
