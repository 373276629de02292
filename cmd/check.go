package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/greydoubt/polyrhythmix/duration"
	"github.com/greydoubt/polyrhythmix/meter"
	"github.com/greydoubt/polyrhythmix/util"
)

func init() {
	rootCmd.AddCommand(checkCmd)
	addPartFlags(checkCmd.Flags())
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Parses patterns and reports their convergence",
	Long:  `Parses patterns and reports per-part lengths and the convergence bar count`,
	Run: func(cmd *cobra.Command, args []string) {
		runCheck()
	},
}

func runCheck() {
	parts, _, err := collectParts(kickFlag, snareFlag, hihatFlag, crashFlag)
	cobra.CheckErr(err)
	if len(parts) == 0 {
		fmt.Println("No drum pattern was supplied, exiting...")
		os.Exit(1)
	}

	sig, err := meter.ParseTimeSignature(signatureFlag)
	cobra.CheckErr(err)

	fmt.Printf("Bar: %v ticks (%v)\n", sig.Ticks(), sig)
	lengths := make([]duration.KnownLength, 0, len(parts))
	for _, p := range util.GetKeys(parts) {
		gs := parts[p]
		fmt.Printf("%v: %v ticks\n", p, gs.Ticks())
		lengths = append(lengths, gs)
	}

	bars, err := sig.Converges(lengths...)
	if errors.Is(err, meter.ErrDoesNotConverge) {
		fmt.Println("Parts do not converge within the bar limit")
		os.Exit(1)
	}
	cobra.CheckErr(err)
	fmt.Printf("Parts converge after %v bars\n", bars)
}
