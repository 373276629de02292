package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "poly",
	Short: "Polyrhythmically-inclined MIDI drum generator",
	Long: `Compiles a compact drum-pattern notation into a MIDI file, sized so
that all parts phase-align with the reference time signature.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
