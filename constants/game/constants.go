package game_constants

import (
	"regexp"
	"time"
)

// Listing status values. Expiry is never written back into the status column:
// browse paths filter on "status = Active AND expires_at > now" and the janitor
// removes rows whose deadline has passed.
const (
	StatusActive    = "Active"
	StatusExpired   = "Expired"
	StatusCancelled = "Cancelled"
)

// Listing kinds, used by routes and the realtime feed rooms.
const (
	KindParty = "party"
	KindLFG   = "lfg"
)

// Default listing lifetimes.
const (
	PartyListingTTL = 30 * time.Minute
	LFGListingTTL   = 60 * time.Minute
)

// AllowedPartyDurations are the lifetimes (in minutes) a party creator may pick
// instead of the default.
var AllowedPartyDurations = []int{5, 10, 15, 30, 45, 60, 90, 120}

// Join code formats. Two formats circulate in-game: the hyphenated 3-3-3 one
// shown on the party screen and the compact 6-character one players paste from
// chat. JoinCodePattern selects which one this deployment accepts; change it
// here and both validation and the error message follow.
const (
	JoinCodePatternHyphenated = `^[A-Z0-9]{3}-[A-Z0-9]{3}-[A-Z0-9]{3}$`
	JoinCodePatternCompact    = `^[A-Z0-9]{6}$`

	JoinCodePattern = JoinCodePatternCompact
	JoinCodeFormat  = "6 alphanumeric characters, e.g. ABC123"
)

var JoinCodeRegexp = regexp.MustCompile(JoinCodePattern)

var PartySizes = []string{"Solo", "Duo", "Trio", "FourStack"}

var Servers = []string{
	"Chicago, IL (USA)",
	"Ashburn, VA (USA)",
	"Santa Clara, CA (USA)",
	"Frankfurt (DE)",
	"London (UK)",
	"Paris (FR)",
	"Madrid (ES)",
	"Stockholm (SE)",
	"Tokyo (JP)",
	"Singapore (SG)",
	"Sydney (AU)",
	"Mumbai (IN)",
	"Sao Paulo (BR)",
}

// Ranks in ascending skill order.
var Ranks = []string{
	"Iron 1", "Iron 2", "Iron 3",
	"Bronze 1", "Bronze 2", "Bronze 3",
	"Silver 1", "Silver 2", "Silver 3",
	"Gold 1", "Gold 2", "Gold 3",
	"Platinum 1", "Platinum 2", "Platinum 3",
	"Diamond 1", "Diamond 2", "Diamond 3",
	"Ascendant 1", "Ascendant 2", "Ascendant 3",
	"Immortal 1", "Immortal 2", "Immortal 3",
	"Radiant",
}

var Modes = []string{"Ranked", "Unrated", "Spike Rush", "Swiftplay", "Deathmatch", "Premier", "Custom"}

var Roles = []string{"Duelist", "Initiator", "Controller", "Sentinel", "Flex"}

var Agents = []string{
	"Astra", "Breach", "Brimstone", "Chamber", "Clove", "Cypher", "Deadlock",
	"Fade", "Gekko", "Harbor", "Iso", "Jett", "KAY/O", "Killjoy", "Neon",
	"Omen", "Phoenix", "Raze", "Reyna", "Sage", "Skye", "Sova", "Tejo",
	"Viper", "Vyse", "Waylay", "Yoru",
}

// Playstyles and Availabilities are recommended vocabularies, not hard limits:
// listings store whatever trimmed labels the client sends so a new UI label
// never fails a write. Clients use these lists to build their pickers.
var Playstyles = []string{"Casual", "Competitive", "Grind", "Chill", "Serious", "Learning", "IGL", "Entry"}

var Availabilities = []string{"Mornings", "Afternoons", "Evenings", "Late Night", "Weekends", "Flexible"}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func IsPartySize(v string) bool { return contains(PartySizes, v) }
func IsServer(v string) bool    { return contains(Servers, v) }
func IsRank(v string) bool      { return contains(Ranks, v) }
func IsMode(v string) bool      { return contains(Modes, v) }
func IsRole(v string) bool      { return contains(Roles, v) }
func IsAgent(v string) bool     { return contains(Agents, v) }

// IsAllowedPartyDuration reports whether a caller-picked lifetime is one of the
// discrete values the UI offers.
func IsAllowedPartyDuration(minutes int) bool {
	for _, m := range AllowedPartyDurations {
		if m == minutes {
			return true
		}
	}
	return false
}
