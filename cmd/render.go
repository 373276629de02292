package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/greydoubt/polyrhythmix/constants"
	"github.com/greydoubt/polyrhythmix/meter"
	"github.com/greydoubt/polyrhythmix/render"
)

var (
	tempoFlag  uint16
	outputFlag string
	bassFlag   bool
)

func init() {
	rootCmd.AddCommand(renderCmd)
	addPartFlags(renderCmd.Flags())
	renderCmd.Flags().Uint16VarP(&tempoFlag, "tempo", "t", constants.DefaultTempo, "tempo in BPM")
	renderCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "output MIDI file path, dry run when absent")
	renderCmd.Flags().BoolVarP(&bassFlag, "follow-kick-drum-with-bass", "B", false, "add a bass track doubling the kick drum")
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Renders drum patterns to a MIDI file",
	Long:  `Renders drum patterns to a MIDI file spanning their convergence point`,
	Run: func(cmd *cobra.Command, args []string) {
		runRender()
	},
}

func runRender() {
	parts, blueprints, err := collectParts(kickFlag, snareFlag, hihatFlag, crashFlag)
	cobra.CheckErr(err)
	if len(parts) == 0 {
		fmt.Println("No drum pattern was supplied, exiting...")
		os.Exit(1)
	}

	sig, err := meter.ParseTimeSignature(signatureFlag)
	cobra.CheckErr(err)

	text := render.TextDescription(blueprints)
	s, err := render.CreateSMF(parts, sig, text, tempoFlag, bassFlag)
	cobra.CheckErr(err)

	if outputFlag == "" {
		fmt.Println("No output file path was supplied, running a dry run...")
		return
	}
	if err := s.WriteFile(outputFlag); err != nil {
		fmt.Printf("Failed to write %v: %v\n", outputFlag, err)
		os.Exit(1)
	}
	fmt.Printf("%v was written successfully\n", outputFlag)
}
