package render

import (
	"fmt"
	"strings"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/greydoubt/polyrhythmix/constants"
	"github.com/greydoubt/polyrhythmix/duration"
	"github.com/greydoubt/polyrhythmix/meter"
	"github.com/greydoubt/polyrhythmix/pattern"
	"github.com/greydoubt/polyrhythmix/util"
)

// DrumPart identifies one instrument line in the kit. The numeric order is
// also the track order in the rendered file.
type DrumPart uint8

const (
	KickDrum DrumPart = iota
	SnareDrum
	HiHat
	CrashCymbal
)

func (p DrumPart) String() string {
	switch p {
	case KickDrum:
		return "Kick Drum"
	case SnareDrum:
		return "Snare Drum"
	case HiHat:
		return "Hi-Hat"
	case CrashCymbal:
		return "Crash Cymbal"
	}
	return fmt.Sprintf("DrumPart(%d)", uint8(p))
}

// Key returns the General MIDI percussion key for the part.
func (p DrumPart) Key() uint8 {
	switch p {
	case KickDrum:
		return constants.AcousticBassDrumKey
	case SnareDrum:
		return constants.AcousticSnareKey
	case HiHat:
		return constants.ClosedHiHatKey
	default:
		return constants.CrashCymbal1Key
	}
}

// Event is one hit on the absolute tick grid.
type Event struct {
	Tick     uint32
	Duration uint32
}

// Expand flattens one part's groups into absolute-tick hits, in order.
// Rests advance the clock without emitting anything.
func Expand(gs pattern.Groups) []Event {
	var events []Event
	var tick uint32
	for _, g := range gs {
		tick = expandGroup(g, tick, &events)
	}
	return events
}

func expandGroup(g pattern.Group, tick uint32, out *[]Event) uint32 {
	unit := g.Length.Ticks()
	for t := pattern.Times(0); t < g.Times; t++ {
		for _, n := range g.Notes {
			if n.Sub != nil {
				tick = expandGroup(*n.Sub, tick, out)
				continue
			}
			if n.Note == pattern.Hit {
				*out = append(*out, Event{Tick: tick, Duration: unit})
			}
			tick += unit
		}
	}
	return tick
}

// TextDescription summarizes the source patterns for the rendered file's
// meta text, one line per supplied part.
func TextDescription(blueprints map[DrumPart]string) string {
	var b strings.Builder
	b.WriteString("Created using polyrhythmix. Part blueprints:")
	for _, p := range util.GetKeys(blueprints) {
		fmt.Fprintf(&b, "\n%v - %s", p, blueprints[p])
	}
	return b.String()
}

// CreateSMF renders the parts into a single type-1 MIDI file. The file
// spans the convergence point of all parts against the reference
// signature, with every part looping until the parts re-align; one track
// per part, plus a meta track and an optional bass track doubling the
// kick drum.
func CreateSMF(parts map[DrumPart]pattern.Groups, sig meter.TimeSignature, text string, tempo uint16, followKickWithBass bool) (*smf.SMF, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("no drum parts to render")
	}
	order := util.GetKeys(parts)
	for _, p := range order {
		if parts[p].Ticks() == 0 {
			return nil, fmt.Errorf("%v pattern has no length", p)
		}
	}

	lengths := make([]duration.KnownLength, 0, len(parts))
	for _, p := range order {
		lengths = append(lengths, parts[p])
	}
	bars, err := sig.Converges(lengths...)
	if err != nil {
		return nil, err
	}
	span := bars * sig.Ticks()

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)

	var meta smf.Track
	meta.Add(0, smf.MetaTrackSequenceName("polyrhythmix"))
	meta.Add(0, smf.MetaText(text))
	meta.Add(0, smf.MetaMeter(sig.Numerator, uint8(sig.Denominator.Notation())))
	meta.Add(0, smf.MetaTempo(float64(tempo)))
	meta.Close(0)
	s.Add(meta)

	for _, p := range order {
		s.Add(partTrack(p, parts[p], span))
	}
	if followKickWithBass {
		if kick, ok := parts[KickDrum]; ok {
			s.Add(bassTrack(kick, span))
		}
	}
	return s, nil
}

func partTrack(part DrumPart, gs pattern.Groups, span uint32) smf.Track {
	var tr smf.Track
	tr.Add(0, smf.MetaInstrument(part.String()))
	cursor := loopEvents(&tr, Expand(gs), gs.Ticks(), span, constants.DrumChannel, part.Key())
	tr.Close(span - cursor)
	return tr
}

// bassTrack plays the kick pattern again on a melodic channel.
func bassTrack(kick pattern.Groups, span uint32) smf.Track {
	var tr smf.Track
	tr.Add(0, smf.MetaInstrument("Bass"))
	tr.Add(0, midi.ProgramChange(constants.BassChannel, constants.FingerBassProgram))
	cursor := loopEvents(&tr, Expand(kick), kick.Ticks(), span, constants.BassChannel, constants.BassKey)
	tr.Close(span - cursor)
	return tr
}

// loopEvents repeats the pattern until it fills the span. The span is a
// common multiple of every part length, so the last repetition always ends
// exactly on the span boundary. Returns the tick the track ended on.
func loopEvents(tr *smf.Track, events []Event, patternTicks, span uint32, channel, key uint8) uint32 {
	var cursor uint32
	for offset := uint32(0); offset < span; offset += patternTicks {
		for _, e := range events {
			on := offset + e.Tick
			off := on + e.Duration
			tr.Add(on-cursor, midi.NoteOn(channel, key, constants.HitVelocity))
			tr.Add(off-on, midi.NoteOff(channel, key))
			cursor = off
		}
	}
	return cursor
}
