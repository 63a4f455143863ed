package postgres

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/*
 * 'PartyInvitation' is a shareable party join code plus the metadata players
 * filter on. String sets are text[] columns so Postgres array operators can
 * serve the browse filters.
 */
type PartyInvitation struct {
	Listing `gorm:"embedded"`

	Size        string         `gorm:"size:20;not null" json:"size"`
	Server      string         `gorm:"size:50;not null;index:idx_party_filter" json:"server"`
	Rank        string         `gorm:"size:20;not null;index:idx_party_filter" json:"rank"`
	Mode        string         `gorm:"size:30;not null" json:"mode"`
	Code        string         `gorm:"size:16;not null" json:"code"`
	Description string         `gorm:"size:500" json:"description"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
	DiscordLink string         `gorm:"size:200" json:"discord_link"`
	InGameName  string         `gorm:"size:50" json:"in_game_name"`

	PreferredRoles  pq.StringArray `gorm:"type:text[]" json:"preferred_roles"`
	PreferredAgents pq.StringArray `gorm:"type:text[]" json:"preferred_agents"`
	LookingForRoles pq.StringArray `gorm:"type:text[]" json:"looking_for_roles"`

	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

func (PartyInvitation) TableName() string { return "party_invitations" }

// Ensure the generated id is truly unique before inserting.
func (p *PartyInvitation) BeforeCreate(tx *gorm.DB) error {
	if p.ID != "" {
		return nil
	}
	for {
		newID := GenerateListingID()
		var existing PartyInvitation
		if err := tx.Where("id = ?", newID).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				p.ID = newID
				return nil
			}
			return err
		}
		// Collision, generate another one
	}
}
