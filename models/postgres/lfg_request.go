package postgres

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/*
 * 'LFGRequest' is a looking-for-group post: a player profile plus
 * availability. Playstyle is an open string set at this layer; the
 * recommended vocabulary is only enforced at the presentation boundary.
 */
type LFGRequest struct {
	Listing `gorm:"embedded"`

	// Display handle for the post, distinct from the account handle
	Username     string         `gorm:"size:50;not null" json:"username"`
	Server       string         `gorm:"size:50;index:idx_lfg_filter" json:"server"`
	Rank         string         `gorm:"size:20;not null;index:idx_lfg_filter" json:"rank"`
	Playstyle    pq.StringArray `gorm:"type:text[];not null" json:"playstyle"`
	Availability string         `gorm:"size:100;not null" json:"availability"`
	Description  string         `gorm:"size:500" json:"description"`
	Tags         pq.StringArray `gorm:"type:text[]" json:"tags"`
	InGameName   string         `gorm:"size:50" json:"in_game_name"`

	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

func (LFGRequest) TableName() string { return "lfg_requests" }

// Ensure the generated id is truly unique before inserting.
func (r *LFGRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID != "" {
		return nil
	}
	for {
		newID := GenerateListingID()
		var existing LFGRequest
		if err := tx.Where("id = ?", newID).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				r.ID = newID
				return nil
			}
			return err
		}
		// Collision, generate another one
	}
}
