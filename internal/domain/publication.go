package domain

import "time"

// Publication schedules a post on a media account at Date.
type Publication struct {
	ID      int64
	MediaID int64
	PostID  int64
	Date    time.Time
}

// IsPublished reports whether the publication date is at or before now.
func (p Publication) IsPublished(now time.Time) bool {
	return !p.Date.After(now)
}

// Status returns the derived status of the publication at now.
func (p Publication) Status(now time.Time) PublicationStatus {
	if p.IsPublished(now) {
		return PublicationStatusPublished
	}
	return PublicationStatusScheduled
}

// PublicationUpdateParams holds the fields of a partial publication update.
// A nil field is left unchanged.
type PublicationUpdateParams struct {
	MediaID *int64
	PostID  *int64
	Date    *time.Time
}

// IsEmpty reports whether no field is set.
func (p PublicationUpdateParams) IsEmpty() bool {
	return p.MediaID == nil && p.PostID == nil && p.Date == nil
}
