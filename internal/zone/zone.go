// Package zone classifies Indian states and union territories into the
// coarse logistics zones used on listing records.
package zone

import "strings"

// Zone is a coarse geographic label.
type Zone string

const (
	North   Zone = "NORTH"
	South   Zone = "SOUTH"
	East    Zone = "EAST"
	West    Zone = "WEST"
	Central Zone = "CENTRAL"
	Misc    Zone = "MISC"
)

var zoneByState = map[string]Zone{
	"delhi":             North,
	"punjab":            North,
	"haryana":           North,
	"uttar pradesh":     North,
	"rajasthan":         North,
	"himachal pradesh":  North,
	"uttarakhand":       North,
	"jammu and kashmir": North,
	"ladakh":            North,
	"chandigarh":        North,

	"karnataka":      South,
	"tamil nadu":     South,
	"kerala":         South,
	"telangana":      South,
	"andhra pradesh": South,
	"puducherry":     South,
	"lakshadweep":    South,
	"andaman and nicobar islands": South,

	"gujarat":     West,
	"maharashtra": West,
	"goa":         West,
	"dadra and nagar haveli and daman and diu": West,

	"west bengal":       East,
	"bihar":             East,
	"jharkhand":         East,
	"assam":             East,
	"sikkim":            East,
	"arunachal pradesh": East,
	"nagaland":          East,
	"manipur":           East,
	"mizoram":           East,
	"tripura":           East,
	"meghalaya":         East,

	"madhya pradesh": Central,
	"chhattisgarh":   Central,
	// Odisha stays CENTRAL to match the committed listing data.
	"odisha": Central,
}

// Classify maps a state name to its zone. Lookup is case- and
// whitespace-insensitive; unknown or empty input yields Misc.
func Classify(state string) Zone {
	if z, ok := zoneByState[strings.ToLower(strings.TrimSpace(state))]; ok {
		return z
	}
	return Misc
}
