package cmd

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/greydoubt/polyrhythmix/pattern"
	"github.com/greydoubt/polyrhythmix/render"
	"github.com/greydoubt/polyrhythmix/util"
)

// part pattern and signature flags shared by the render and check commands
var (
	kickFlag      string
	snareFlag     string
	hihatFlag     string
	crashFlag     string
	signatureFlag string
)

func addPartFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&kickFlag, "kick", "K", "", "kick drum pattern")
	fs.StringVarP(&snareFlag, "snare", "S", "", "snare drum pattern")
	fs.StringVarP(&hihatFlag, "hihat", "H", "", "hi-hat pattern")
	fs.StringVarP(&crashFlag, "crash", "C", "", "crash cymbal pattern")
	fs.StringVarP(&signatureFlag, "signature", "s", "4/4", "reference time signature")
}

// collectParts compiles every supplied pattern, attributing a failure to
// its part. The blueprint map keeps the raw notation for the file's text
// description.
func collectParts(kick, snare, hihat, crash string) (map[render.DrumPart]pattern.Groups, map[render.DrumPart]string, error) {
	parts := make(map[render.DrumPart]pattern.Groups)
	blueprints := make(map[render.DrumPart]string)

	raw := map[render.DrumPart]string{
		render.KickDrum:    kick,
		render.SnareDrum:   snare,
		render.HiHat:       hihat,
		render.CrashCymbal: crash,
	}
	for _, part := range util.GetKeys(raw) {
		text := raw[part]
		if text == "" {
			continue
		}
		gs, err := pattern.ParseGroups(text)
		if err != nil {
			return nil, nil, fmt.Errorf("%v pattern is malformed: %v", part, err)
		}
		parts[part] = gs
		blueprints[part] = text
	}
	return parts, blueprints, nil
}
