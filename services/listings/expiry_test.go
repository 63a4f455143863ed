package listings

import (
	"testing"
	"time"

	game_constants "Fivestack/constants/game"

	"github.com/stretchr/testify/assert"
)

func TestPartyTTLDefault(t *testing.T) {
	ttl, err := PartyTTL(0)
	assert.NoError(t, err)
	assert.Equal(t, 30*time.Minute, ttl)
}

func TestPartyTTLCustomDuration(t *testing.T) {
	for _, minutes := range game_constants.AllowedPartyDurations {
		ttl, err := PartyTTL(minutes)
		assert.NoError(t, err)
		assert.Equal(t, time.Duration(minutes)*time.Minute, ttl)
	}
}

func TestPartyTTLRejectsArbitraryDuration(t *testing.T) {
	for _, minutes := range []int{-5, 7, 31, 121, 1000} {
		_, err := PartyTTL(minutes)
		assert.Error(t, err, "duration %d should be rejected", minutes)
		assert.True(t, IsValidation(err))
	}
}

func TestLFGTTL(t *testing.T) {
	assert.Equal(t, 60*time.Minute, LFGTTL())
}

func TestExpiryFromIsStrictlyAfterCreation(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	expiresAt := ExpiryFrom(createdAt, 30*time.Minute)
	assert.True(t, expiresAt.After(createdAt))
	assert.Equal(t, 30*time.Minute, expiresAt.Sub(createdAt))
}
