package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/harshasoftware/halohome/astrocore"
	"github.com/harshasoftware/halohome/model"
)

func newScoutCmd() *cobra.Command {
	var cityName, cityCountry, category string
	var cityLat, cityLon float64

	cmd := &cobra.Command{
		Use:   "scout",
		Short: "Score one city against a birth instant's lines for a life category",
	}
	bf := addBirthFlags(cmd)
	cmd.Flags().StringVar(&cityName, "city-name", "", "city name")
	cmd.Flags().StringVar(&cityCountry, "city-country", "", "city country")
	cmd.Flags().Float64Var(&cityLat, "city-lat", 0, "city latitude in degrees")
	cmd.Flags().Float64Var(&cityLon, "city-lon", 0, "city longitude in degrees")
	cmd.Flags().StringVar(&category, "category", "career", "life category")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cat, err := parseCategory(category)
		if err != nil {
			return err
		}
		city := model.City{Name: cityName, Country: cityCountry, LatDeg: cityLat, LonDeg: cityLon}

		utcOffset, err := bf.resolvedUTCOffsetHours()
		if err != nil {
			return err
		}
		score, err := astrocore.ScoutCity(cmd.Context(), bf.instant(), utcOffset, city, cat, model.DefaultScoringConfig())
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(score)
	}
	return cmd
}
