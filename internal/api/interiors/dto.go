package interiors

import (
	"time"

	"riz-interiors-server/internal/domain/gallery"
)

type interiorImageInput struct {
	Name          string `json:"name"`
	Image         string `json:"image"`
	CollectionRef string `json:"collectionRef"`
}

// CollectionSummary is the slice of the referenced collection embedded
// into interior-image responses.
type CollectionSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// InteriorImageDTO is an interior image with its collection reference
// resolved read-side.
type InteriorImageDTO struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Image         string             `json:"image"`
	CollectionRef string             `json:"collectionRef"`
	Collection    *CollectionSummary `json:"collection,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

func toDTO(img gallery.InteriorImage, collections map[string]gallery.Collection) InteriorImageDTO {
	dto := InteriorImageDTO{
		ID:            img.ID,
		Name:          img.Name,
		Image:         img.Image,
		CollectionRef: img.CollectionRef,
		CreatedAt:     img.CreatedAt,
		UpdatedAt:     img.UpdatedAt,
	}
	if col, ok := collections[img.CollectionRef]; ok {
		dto.Collection = &CollectionSummary{ID: col.ID, Name: col.Name, Image: col.Image}
	}
	return dto
}
