package gallery

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InteriorImage is a single gallery entry. Every image belongs to
// exactly one Collection via CollectionRef; the association below
// exists only so the store enforces the reference (RESTRICT blocks
// deleting a collection that still has images). Read paths resolve
// the reference themselves instead of preloading it.
type InteriorImage struct {
	ID            string `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string `gorm:"not null" json:"name"`
	Image         string `gorm:"not null" json:"image"`
	CollectionRef string `gorm:"type:uuid;not null;index" json:"collectionRef"`

	Collection *Collection `gorm:"foreignKey:CollectionRef;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (i *InteriorImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
