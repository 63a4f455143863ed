package listings

import (
	"time"

	game_constants "Fivestack/constants/game"

	"gorm.io/gorm"
)

// Expiry policy: pure functions that fix a listing's lifetime at creation and
// define the visibility predicate every read path applies.

// PartyTTL returns the lifetime for a new party invitation. durationMinutes of
// zero means "use the default"; any other value must be one of the discrete
// choices the UI offers.
func PartyTTL(durationMinutes int) (time.Duration, error) {
	if durationMinutes == 0 {
		return game_constants.PartyListingTTL, nil
	}
	if !game_constants.IsAllowedPartyDuration(durationMinutes) {
		return 0, invalid("duration_minutes", "duration must be one of 5, 10, 15, 30, 45, 60, 90, 120 minutes")
	}
	return time.Duration(durationMinutes) * time.Minute, nil
}

// LFGTTL returns the fixed lifetime for a new LFG request.
func LFGTTL() time.Duration {
	return game_constants.LFGListingTTL
}

// ExpiryFrom computes the expiry deadline for a listing created at createdAt.
func ExpiryFrom(createdAt time.Time, ttl time.Duration) time.Time {
	return createdAt.Add(ttl)
}

// VisibleScope restricts a query to listings satisfying the visibility
// predicate: Active status and an expiry still in the future. Applied by every
// browse path regardless of whether the janitor already swept the row.
func VisibleScope(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ? AND expires_at > ?", game_constants.StatusActive, now)
	}
}
