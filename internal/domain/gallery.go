package domain

import "time"

// GalleryItem is a showcase photo of completed work.
type GalleryItem struct {
	ID          string
	Title       string
	Description string
	ImageURL    string
	Category    ServiceType
	Approved    bool
	CreatedAt   time.Time
}
