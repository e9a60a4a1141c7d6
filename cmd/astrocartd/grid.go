package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/harshasoftware/halohome/astrocore"
	"github.com/harshasoftware/halohome/model"
)

func newGridCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Run the hierarchical grid scout across the whole globe for a life category",
		Long: `Scans the globe at a coarse 5deg step, refines the top decile at 1deg,
then again at 0.25deg, and prints the surviving hot-zone points. This evaluates
the full line/influence/aggregate pipeline at every sampled coordinate and can
take a while for a dense category.`,
	}
	bf := addBirthFlags(cmd)
	cmd.Flags().StringVar(&category, "category", "career", "life category")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cat, err := parseCategory(category)
		if err != nil {
			return err
		}
		utcOffset, err := bf.resolvedUTCOffsetHours()
		if err != nil {
			return err
		}
		points, err := astrocore.ScoutGridOptimized(cmd.Context(), bf.instant(), utcOffset, cat, model.DefaultScoringConfig())
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(points)
	}
	return cmd
}
