package postgres

import (
	"math/rand"
	"time"

	game_constants "Fivestack/constants/game"
)

/*
 * 'Listing' holds the lifecycle fields shared by PartyInvitation and
 * LFGRequest. Both kinds embed it so the store and the query engine work on a
 * single shape: id, owner, creation/expiry timestamps, view counter, status.
 */
type Listing struct {
	ID        string    `gorm:"primaryKey;size:16;not null" json:"id"`
	OwnerID   uint      `gorm:"not null;index" json:"owner_id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	// ExpiresAt is always strictly after CreatedAt
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	Views     int64     `gorm:"not null" json:"views"`
	Status    string    `gorm:"size:20;not null;default:'Active';index" json:"status"`
}

// IsVisible is the predicate every browse path enforces: only Active listings
// whose expiry has not passed may appear, even if the row still exists.
func (l *Listing) IsVisible(now time.Time) bool {
	return l.Status == game_constants.StatusActive && now.Before(l.ExpiresAt)
}

// Random listing id generation, same charset the join codes use
const listingIDCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const ListingIDLength = 12

func GenerateListingID() string {
	b := make([]byte, ListingIDLength)
	for i := range b {
		b[i] = listingIDCharset[rand.Intn(len(listingIDCharset))]
	}
	return string(b)
}
