package model

// RenderRequestBody carries the same surface as the render command's
// flags. Empty part strings mean the part is absent.
type RenderRequestBody struct {
	Kick               string `json:"kick,omitempty"`
	Snare              string `json:"snare,omitempty"`
	HiHat              string `json:"hihat,omitempty"`
	Crash              string `json:"crash,omitempty"`
	Tempo              uint16 `json:"tempo,omitempty"`
	TimeSignature      string `json:"time_signature,omitempty"`
	FollowKickWithBass bool   `json:"follow_kick_drum_with_bass,omitempty"`
}

type ConvergeResponse struct {
	Bars      uint32            `json:"bars"`
	BarTicks  uint32            `json:"bar_ticks"`
	PartTicks map[string]uint32 `json:"part_ticks"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
