// Package shipping computes the flat delivery fee charged at checkout.
package shipping

import (
	"os"
	"strings"
)

// DefaultLocalCity is the city token that marks an address as a local
// delivery. Override with the LOCAL_CITY env var.
const DefaultLocalCity = "Dhaka"

// Tier maps a weight ceiling (kilograms, exclusive) to a fee pair.
type Tier struct {
	MaxKG  float64
	Local  float64
	Remote float64
}

// Tiers is ordered by ascending ceiling. The top tier is reused for
// anything at or above its ceiling, so a 2.5kg parcel pays the 2kg fee.
var Tiers = []Tier{
	{MaxKG: 0.5, Local: 60, Remote: 110},
	{MaxKG: 1.0, Local: 80, Remote: 130},
	{MaxKG: 2.0, Local: 100, Remote: 170},
}

// LocalCity returns the configured local-city token.
func LocalCity() string {
	if c := os.Getenv("LOCAL_CITY"); c != "" {
		return c
	}
	return DefaultLocalCity
}

// IsLocal reports whether the free-text address contains the city token,
// case-insensitively.
func IsLocal(address, city string) bool {
	return strings.Contains(strings.ToLower(address), strings.ToLower(city))
}

// Fee picks the tier for weightKG and returns its local or remote fee
// depending on the destination address. Negative weight falls into the
// first tier.
func Fee(weightKG float64, address string) float64 {
	return FeeForCity(weightKG, address, LocalCity())
}

// FeeForCity is Fee with an explicit local-city token.
func FeeForCity(weightKG float64, address, city string) float64 {
	tier := Tiers[len(Tiers)-1]
	for _, t := range Tiers {
		if weightKG < t.MaxKG {
			tier = t
			break
		}
	}
	if IsLocal(address, city) {
		return tier.Local
	}
	return tier.Remote
}
