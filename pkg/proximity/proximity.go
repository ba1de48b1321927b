// Package proximity turns a distance into a privacy-safe closeness label,
// shown when exact candidate coordinates are withheld.
package proximity

// Percent returns closeness as (1 - distance/radius) * 100, clamped to
// [0,100]; 100 = same spot, 0 = at or beyond the radius.
func Percent(distanceKm, radiusKm float64) float64 {
	if radiusKm <= 0 || distanceKm >= radiusKm {
		return 0
	}
	p := (1 - distanceKm/radiusKm) * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Label buckets Percent into a coarse human label.
func Label(distanceKm, radiusKm float64) string {
	switch p := Percent(distanceKm, radiusKm); {
	case p >= 75:
		return "Very Close"
	case p >= 50:
		return "Nearby"
	case p >= 25:
		return "Within Area"
	case p > 0:
		return "Far (within range)"
	default:
		return ""
	}
}
