package astrocore

import "github.com/harshasoftware/halohome/model"

// CountryGroup is one country's cities from a CityRanking list, kept in
// their incoming (already-sorted) order.
type CountryGroup struct {
	Country string                `json:"country"`
	Cities  []model.CityRanking   `json:"cities"`
}

// RankCountriesFromCities groups rankings by City.Country and orders the
// groups by their best (first, since rankings is already sorted) city
// score: groups are ordered by top city score, with no separate country
// score emitted. Within a group, cities keep rankings' order.
func RankCountriesFromCities(rankings []model.CityRanking) []CountryGroup {
	index := make(map[string]int)
	var groups []CountryGroup
	for _, r := range rankings {
		i, ok := index[r.City.Country]
		if !ok {
			i = len(groups)
			index[r.City.Country] = i
			groups = append(groups, CountryGroup{Country: r.City.Country})
		}
		groups[i].Cities = append(groups[i].Cities, r)
	}
	return groups
}
