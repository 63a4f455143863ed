package postgres

import (
	"strings"
	"testing"
	"time"

	game_constants "Fivestack/constants/game"

	"github.com/stretchr/testify/assert"
)

func TestGenerateListingID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateListingID()
		assert.Len(t, id, ListingIDLength)
		for _, r := range id {
			assert.True(t, strings.ContainsRune(listingIDCharset, r))
		}
		seen[id] = true
	}
	// Collisions over 100 draws from 62^12 would mean a broken generator
	assert.Greater(t, len(seen), 90)
}

func TestListingIsVisible(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	active := Listing{Status: game_constants.StatusActive, ExpiresAt: now.Add(time.Minute)}
	assert.True(t, active.IsVisible(now))

	// An expired listing stays invisible even while its status still says Active
	stale := Listing{Status: game_constants.StatusActive, ExpiresAt: now.Add(-time.Minute)}
	assert.False(t, stale.IsVisible(now))

	// The deadline itself is already invisible
	boundary := Listing{Status: game_constants.StatusActive, ExpiresAt: now}
	assert.False(t, boundary.IsVisible(now))

	cancelled := Listing{Status: game_constants.StatusCancelled, ExpiresAt: now.Add(time.Minute)}
	assert.False(t, cancelled.IsVisible(now))
}

func TestUserPasswordRoundTrip(t *testing.T) {
	var u User
	assert.NoError(t, u.SetPassword("hunter2hunter2"))
	assert.NotEqual(t, "hunter2hunter2", u.PasswordHash)
	assert.NoError(t, u.ValidatePassword("hunter2hunter2"))
	assert.Error(t, u.ValidatePassword("wrong-password"))
}

func TestUserSummaryExposesNoSecrets(t *testing.T) {
	u := User{Email: "a@b.c", PasswordHash: "secret", RiotID: "Venter#EUW", Verified: true}
	s := u.Summary()
	assert.Equal(t, OwnerSummary{RiotID: "Venter#EUW", Verified: true}, s)
}
