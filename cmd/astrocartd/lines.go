package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harshasoftware/halohome/astrocore"
	"github.com/harshasoftware/halohome/units"
)

func newLinesCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "lines",
		Short: "Compute every planetary angular/aspect/paran line for a birth instant",
	}
	bf := addBirthFlags(cmd)
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or text")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		result, err := calculateLines(cmd, bf)
		if err != nil {
			return err
		}

		if format == "text" {
			printLinesText(cmd, result)
			return nil
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	return cmd
}

func calculateLines(cmd *cobra.Command, bf *birthFlags) (astrocore.AllLinesResult, error) {
	if bf.timezone != "" {
		return astrocore.CalculateAllLinesLocal(cmd.Context(), bf.instant(), bf.resolver())
	}
	return astrocore.CalculateAllLines(cmd.Context(), bf.instant(), bf.utcOffsetHours)
}

func printLinesText(cmd *cobra.Command, result astrocore.AllLinesResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Julian Date (UTC): %.6f\n\n", result.TimeFrame.JDUTC)
	fmt.Fprintln(out, "Planetary positions:")
	for _, body := range orderedBodies(result.Positions) {
		pos := result.Positions[body]
		alpha := units.NewAngle(pos.AlphaRad)
		delta := units.NewAngle(pos.DeltaRad)
		sign, h, m, s := alpha.HMS()
		dSign, dDeg, dMin, dSec := delta.DMS()
		fmt.Fprintf(out, "  %-10s RA %s%02dh%02dm%05.2fs  Dec %s%02d°%02d'%05.2f\"\n",
			body, signStr(sign), h, m, s, signStr(dSign), dDeg, dMin, dSec)
	}
	fmt.Fprintf(out, "\n%d lines, %d aspect lines, %d parans\n",
		len(result.Lines), len(result.AspectLines), len(result.Parans))
}

func signStr(sign float64) string {
	if sign < 0 {
		return "-"
	}
	return "+"
}
