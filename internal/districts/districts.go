// Package districts holds the canonical Berkeley district map: which council
// office each district elects and which ZIP codes fall inside it. The map is
// static configuration data and the single source of truth for ZIP lookups.
package districts

import (
	"sort"
	"strings"
)

// District describes one council district with its office and ZIP coverage.
type District struct {
	Name     string   `json:"district"`
	Office   string   `json:"office"`
	Zipcodes []string `json:"zipcodes"`
}

var catalog = []District{
	{Name: "District 1", Office: "City Council District 1", Zipcodes: []string{"94702", "94710"}},
	{Name: "District 2", Office: "City Council District 2", Zipcodes: []string{"94702", "94703"}},
	{Name: "District 3", Office: "City Council District 3", Zipcodes: []string{"94703", "94705"}},
	{Name: "District 4", Office: "City Council District 4", Zipcodes: []string{"94702", "94703", "94704"}},
	{Name: "District 5", Office: "City Council District 5", Zipcodes: []string{"94707", "94708", "94709"}},
	{Name: "District 6", Office: "City Council District 6", Zipcodes: []string{"94707", "94708"}},
	{Name: "District 7", Office: "City Council District 7", Zipcodes: []string{"94704", "94705"}},
	{Name: "District 8", Office: "City Council District 8", Zipcodes: []string{"94705"}},
}

// CitywideZipcodes covers every Berkeley ZIP; citywide contests such as Mayor
// span all of them.
var CitywideZipcodes = []string{
	"94701", "94702", "94703", "94704", "94705",
	"94707", "94708", "94709", "94710", "94720",
}

// All returns the full district catalog in district order.
func All() []District {
	out := make([]District, len(catalog))
	copy(out, catalog)
	return out
}

// ByZipcode returns every district whose ZIP coverage contains the given
// code, in district order.
func ByZipcode(zipcode string) []District {
	zipcode = strings.TrimSpace(zipcode)
	matches := make([]District, 0, 2)
	for _, district := range catalog {
		if containsZipcode(district.Zipcodes, zipcode) {
			matches = append(matches, district)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Name < matches[j].Name })
	return matches
}

func containsZipcode(zipcodes []string, zipcode string) bool {
	for _, candidate := range zipcodes {
		if candidate == zipcode {
			return true
		}
	}
	return false
}
