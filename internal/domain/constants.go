package domain

// Location privacy modes controlling who may see a user's location.
const (
	PrivacyPublic  = "public"
	PrivacyFriends = "friends"
	PrivacyPrivate = "private"
	PrivacyHidden  = "hidden"
)

// Match statuses for a pairwise interaction.
const (
	MatchStatusPending  = "pending"
	MatchStatusLiked    = "liked"
	MatchStatusDisliked = "disliked"
	MatchStatusMatched  = "matched"
	MatchStatusBlocked  = "blocked"
)

// Sources for a location history entry.
const (
	LocationSourceGPS     = "gps"
	LocationSourceNetwork = "network"
	LocationSourceManual  = "manual"
	LocationSourceIP      = "ip"
)

// Location update frequencies.
const (
	UpdateFrequencyRealtime = "realtime"
	UpdateFrequencyHourly   = "hourly"
	UpdateFrequencyDaily    = "daily"
	UpdateFrequencyManual   = "manual"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// DefaultMaxDistanceKm is the search radius applied when a user has not set one.
const DefaultMaxDistanceKm = 50.0

var matchStatuses = map[string]bool{
	MatchStatusPending:  true,
	MatchStatusLiked:    true,
	MatchStatusDisliked: true,
	MatchStatusMatched:  true,
	MatchStatusBlocked:  true,
}

var privacyModes = map[string]bool{
	PrivacyPublic:  true,
	PrivacyFriends: true,
	PrivacyPrivate: true,
	PrivacyHidden:  true,
}

var locationSources = map[string]bool{
	LocationSourceGPS:     true,
	LocationSourceNetwork: true,
	LocationSourceManual:  true,
	LocationSourceIP:      true,
}

var updateFrequencies = map[string]bool{
	UpdateFrequencyRealtime: true,
	UpdateFrequencyHourly:   true,
	UpdateFrequencyDaily:    true,
	UpdateFrequencyManual:   true,
}

// ValidMatchStatus reports whether s is one of the recognized match statuses.
func ValidMatchStatus(s string) bool { return matchStatuses[s] }

// ValidPrivacyMode reports whether s is a recognized location privacy mode.
func ValidPrivacyMode(s string) bool { return privacyModes[s] }

// ValidLocationSource reports whether s is a recognized location source.
func ValidLocationSource(s string) bool { return locationSources[s] }

// ValidUpdateFrequency reports whether s is a recognized update frequency.
func ValidUpdateFrequency(s string) bool { return updateFrequencies[s] }
