package gallery

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Collection groups interior images under a named theme
// (e.g. "Modern", "Minimalist"). Names are unique site-wide.
type Collection struct {
	ID    string `gorm:"type:uuid;primaryKey" json:"id"`
	Name  string `gorm:"not null;uniqueIndex" json:"name"`
	Image string `gorm:"not null" json:"image"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Collection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
