// Package hum flags noise profiles that look like electrical mains hum
// rather than genuine room noise. A profile centred on a mains harmonic
// produces a mask that tracks electrical interference, not the ambience the
// operator wanted to cover.
package hum

import (
	"math"
	"strings"

	tz "github.com/medama-io/go-timezone-country"
	"github.com/thlib/go-timezone-local/tzlocal"
)

const (
	// harmonicWindowHz is how close the profile centre must sit to a mains
	// harmonic to be flagged.
	harmonicWindowHz = 5.0

	// checkedHarmonics is how many harmonics are compared against the
	// profile centre, fundamental included (50Hz mains: 50/100/150/200).
	checkedHarmonics = 4
)

// LocalMainsHz returns the local mains frequency in Hz (50 or 60), detected
// from the system timezone. Falls back to 50Hz when detection fails.
func LocalMainsHz() int {
	timezone, err := tzlocal.RuntimeTZ()
	if err != nil {
		return 50
	}
	return MainsHzForTimezone(timezone)
}

// MainsHzForTimezone returns the mains frequency for an IANA timezone.
// Exported for testing with specific timezones.
func MainsHzForTimezone(timezone string) int {
	// UTC/GMT carry no country association
	if timezone == "UTC" || timezone == "GMT" || strings.HasPrefix(timezone, "Etc/") {
		return 50
	}

	tzMap, err := tz.NewTimezoneCountryMap()
	if err != nil {
		return 50
	}
	country, err := tzMap.GetCountry(timezone)
	if err != nil {
		return 50
	}

	if sixtyHzCountries[country] {
		return 60
	}
	// Japan splits 50/60Hz by region; 50Hz (Tokyo) is the safer default, so
	// the map lists only unambiguous 60Hz countries.
	return 50
}

// Dominated reports whether the measured mean frequency lies within a few Hz
// of a mains harmonic.
func Dominated(meanFrequencyHz float64, mainsHz int) bool {
	for harmonic := 1; harmonic <= checkedHarmonics; harmonic++ {
		if math.Abs(meanFrequencyHz-float64(mainsHz*harmonic)) <= harmonicWindowHz {
			return true
		}
	}
	return false
}

// sixtyHzCountries lists countries on 60Hz mains power; everywhere else uses
// 50Hz. Source: https://en.wikipedia.org/wiki/Mains_electricity_by_country
var sixtyHzCountries = map[string]bool{
	// Americas
	"United States": true,
	"Canada":        true,
	"Mexico":        true,
	"Belize":        true,
	"Costa Rica":    true,
	"El Salvador":   true,
	"Guatemala":     true,
	"Honduras":      true,
	"Nicaragua":     true,
	"Panama":        true,

	// Caribbean
	"Bahamas":             true,
	"Barbados":            true,
	"Cayman Islands":      true,
	"Cuba":                true,
	"Dominican Republic":  true,
	"Haiti":               true,
	"Jamaica":             true,
	"Puerto Rico":         true,
	"Trinidad and Tobago": true,
	"U.S. Virgin Islands": true,

	// South America (most of the continent is 50Hz)
	"Brazil":    true, // both grids exist; 60Hz predominant
	"Colombia":  true,
	"Ecuador":   true,
	"Guyana":    true,
	"Peru":      true,
	"Suriname":  true,
	"Venezuela": true,

	// Asia
	"South Korea":  true,
	"Taiwan":       true,
	"Philippines":  true,
	"Saudi Arabia": true,

	// Pacific
	"Guam":             true,
	"American Samoa":   true,
	"Marshall Islands": true,
	"Micronesia":       true,
	"Palau":            true,
}
