package model

import (
	"time"
)

// PhotoInfo describes the image attached to a work item. Width and height may
// be zero when the API omits them; callers fall back to a square aspect.
type PhotoInfo struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// WorkItem is one gallery entry from the content API. Body is an HTML
// fragment and may contain <br> line breaks; ShootingDate is an ISO date
// string (possibly with a time component).
type WorkItem struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	ShootingDate string    `json:"shootingDate"`
	Photo        PhotoInfo `json:"photo"`
}

// AspectRatio returns width/height of the photo, or 1 when either dimension
// is missing or invalid.
func (w *WorkItem) AspectRatio() float64 {
	if w.Photo.Width <= 0 || w.Photo.Height <= 0 {
		return 1
	}
	return float64(w.Photo.Width) / float64(w.Photo.Height)
}

// FormattedDate returns the shooting date as "YYYY.MM.DD", or an empty string
// when the date is missing or unparseable.
func (w *WorkItem) FormattedDate() string {
	if w.ShootingDate == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, w.ShootingDate); err == nil {
			return t.Format("2006.01.02")
		}
	}
	return ""
}

// Page is the content API's paginated response envelope.
type Page struct {
	Contents   []WorkItem `json:"contents"`
	TotalCount int        `json:"totalCount"`
	Offset     int        `json:"offset"`
	Limit      int        `json:"limit"`
}
