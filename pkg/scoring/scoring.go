// Package scoring computes the 0-100 compatibility score between two users
// from distance, age gap and gender preference.
package scoring

const (
	maxDistancePoints = 40.0
	maxAgePoints      = 30.0
	genderPoints      = 20.0
	mutualBonus       = 10.0
	agePenaltyPerYear = 2.0
)

// Profile carries the fields of a user relevant to scoring. Zero values mean
// "unknown": an unknown field contributes nothing instead of failing.
type Profile struct {
	Age             int
	Gender          string
	PreferredGender string
	MaxDistanceKm   float64
}

// MatchScore returns the compatibility score of b as seen from a, in [0,100].
// distanceKm is the pair distance snapshot, nil when unknown.
func MatchScore(a, b Profile, distanceKm *float64) float64 {
	score := distanceScore(a, distanceKm) + ageScore(a, b)

	aWants := prefers(a, b)
	bWants := prefers(b, a)
	if aWants || bWants {
		score += genderPoints
	}
	if aWants && bWants {
		score += mutualBonus
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func distanceScore(a Profile, distanceKm *float64) float64 {
	if distanceKm == nil || a.MaxDistanceKm <= 0 {
		return 0
	}
	s := maxDistancePoints - (*distanceKm/a.MaxDistanceKm)*maxDistancePoints
	if s < 0 {
		return 0
	}
	return s
}

func ageScore(a, b Profile) float64 {
	if a.Age <= 0 || b.Age <= 0 {
		return 0
	}
	gap := a.Age - b.Age
	if gap < 0 {
		gap = -gap
	}
	s := maxAgePoints - agePenaltyPerYear*float64(gap)
	if s < 0 {
		return 0
	}
	return s
}

// prefers reports whether p's gender preference matches other's gender.
// An empty preference or an unknown gender never matches.
func prefers(p, other Profile) bool {
	return p.PreferredGender != "" && p.PreferredGender == other.Gender
}
