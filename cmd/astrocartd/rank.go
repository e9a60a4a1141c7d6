package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/harshasoftware/halohome/astrocore"
	"github.com/harshasoftware/halohome/model"
)

func newRankCmd() *cobra.Command {
	var citiesFile, category, sortMode string
	var byCountry bool

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank a catalogue of cities (or countries) for a life category",
	}
	bf := addBirthFlags(cmd)
	cmd.Flags().StringVar(&citiesFile, "cities-file", "", "path to a JSON array of {name,country,lat_deg,lon_deg} cities")
	cmd.Flags().StringVar(&category, "category", "career", "life category")
	cmd.Flags().StringVar(&sortMode, "sort", "benefit", "sort mode: benefit, intensity, or balanced")
	cmd.Flags().BoolVar(&byCountry, "by-country", false, "group the ranked cities by country instead of listing them flat")
	cmd.MarkFlagRequired("cities-file")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cities, err := loadCities(citiesFile)
		if err != nil {
			return err
		}
		cat, err := parseCategory(category)
		if err != nil {
			return err
		}
		sort, err := parseSortMode(sortMode)
		if err != nil {
			return err
		}
		utcOffset, err := bf.resolvedUTCOffsetHours()
		if err != nil {
			return err
		}

		cfg := model.DefaultScoringConfig()
		cfg.Sort = sort
		rankings, err := astrocore.ScoutCitiesForCategory(cmd.Context(), bf.instant(), utcOffset, cities, cat, cfg)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if byCountry {
			return enc.Encode(astrocore.RankCountriesFromCities(rankings))
		}
		return enc.Encode(rankings)
	}
	return cmd
}

func loadCities(path string) ([]model.City, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cities []model.City
	if err := json.Unmarshal(data, &cities); err != nil {
		return nil, err
	}
	return cities, nil
}
