package postgres

import (
	"time"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

/*
 * 'User' is an account holder. Listings reference it through OwnerID; the
 * password hash and email must never leave the auth endpoints.
 */
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	// Public handle in "Name#Tag" format
	RiotID         string         `gorm:"size:100;not null" json:"riot_id"`
	Bio            string         `gorm:"size:500" json:"bio"`
	Verified       bool           `gorm:"default:false" json:"verified"`
	BlockedUserIDs pq.StringArray `gorm:"type:text[]" json:"-"`
	Preferences    datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"preferences"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// SetPassword hashes and stores the given plaintext password.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// ValidatePassword checks a plaintext password against the stored hash.
func (u *User) ValidatePassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

// OwnerSummary is the display-safe projection of a user attached to listings.
type OwnerSummary struct {
	RiotID   string `json:"riot_id"`
	Verified bool   `json:"verified"`
}

func (u *User) Summary() OwnerSummary {
	return OwnerSummary{RiotID: u.RiotID, Verified: u.Verified}
}
