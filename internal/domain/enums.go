package domain

// EntityType names the persisted entities. It is used as the error prefix
// and as the row key of the storage error classification table.
type EntityType string

const (
	EntityTypeMedia       EntityType = "media"
	EntityTypePost        EntityType = "post"
	EntityTypePublication EntityType = "publication"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeMedia, EntityTypePost, EntityTypePublication:
		return true
	}
	return false
}

// PublicationStatus is derived from a publication date and the current instant.
// It is never persisted.
type PublicationStatus string

const (
	PublicationStatusScheduled PublicationStatus = "scheduled"
	PublicationStatusPublished PublicationStatus = "published"
)

func (s PublicationStatus) String() string { return string(s) }
