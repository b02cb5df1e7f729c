package blogs

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultAuthor = "Admin"

// Blog is a published or draft post. Slug is derived from the title
// (see Slugify) and carries a uniqueness constraint in the store, so a
// title collision surfaces as a duplicate-key error on create/update.
type Blog struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Slug        string `gorm:"not null;uniqueIndex" json:"slug"`
	CoverImage  string `gorm:"not null" json:"coverImage"`
	Content     string `gorm:"type:text;not null" json:"content"`
	Excerpt     string `gorm:"size:200;not null" json:"excerpt"`
	Author      string `gorm:"not null;default:'Admin'" json:"author"`
	Tags        Tags   `gorm:"type:text;not null;default:'[]'" json:"tags"`
	IsPublished bool   `gorm:"not null;default:true" json:"isPublished"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Tags == nil {
		b.Tags = Tags{}
	}
	return nil
}
