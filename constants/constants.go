package constants

// Tick resolution: 128 ticks per whole note, so 32 per quarter. The finest
// representable note, a sixty-fourth, is 2 ticks.
const (
	TicksPerWhole   = 128
	TicksPerQuarter = 32
)

// DefaultConvergenceLimit caps how many reference bars a set of patterns
// may take to re-align. It is a guardrail against absurd renders, not a
// musical constant.
const DefaultConvergenceLimit = 1000

const DefaultTempo = 120

// General MIDI assignments for the rendered tracks.
const (
	DrumChannel = 9
	BassChannel = 0

	AcousticBassDrumKey = 36
	AcousticSnareKey    = 38
	ClosedHiHatKey      = 42
	CrashCymbal1Key     = 49

	// Electric Bass (finger), doubling the kick when the follow-kick
	// option is on.
	FingerBassProgram = 33
	BassKey           = 36

	HitVelocity = 100
)
