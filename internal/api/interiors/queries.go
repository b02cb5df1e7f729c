package interiors

import (
	"strings"

	"riz-interiors-server/internal/domain/gallery"

	"gorm.io/gorm"
)

func imagesQuery(db *gorm.DB, collectionRef, search string) *gorm.DB {
	q := db.Model(&gallery.InteriorImage{})
	if collectionRef != "" {
		q = q.Where("collection_ref = ?", collectionRef)
	}
	if search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	return q
}

// resolveCollections batch-fetches the collections referenced by a page
// of images, keyed by id. This is the explicit read-side join: fetch
// the page, then one IN query for the referenced rows.
func resolveCollections(db *gorm.DB, images []gallery.InteriorImage) (map[string]gallery.Collection, error) {
	if len(images) == 0 {
		return map[string]gallery.Collection{}, nil
	}

	seen := make(map[string]struct{}, len(images))
	ids := make([]string, 0, len(images))
	for _, img := range images {
		if _, ok := seen[img.CollectionRef]; ok {
			continue
		}
		seen[img.CollectionRef] = struct{}{}
		ids = append(ids, img.CollectionRef)
	}

	var collections []gallery.Collection
	if err := db.Select("id", "name", "image").
		Where("id IN ?", ids).
		Find(&collections).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]gallery.Collection, len(collections))
	for _, col := range collections {
		byID[col.ID] = col
	}
	return byID, nil
}
