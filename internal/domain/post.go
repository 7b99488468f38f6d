package domain

// Post is a piece of content that can be published on a media account.
type Post struct {
	ID    int64
	Title string
	Text  string
	Image *string
}

// PostUpdateParams holds the fields of a partial post update.
// A nil field is left unchanged; Image set to ptr("") clears the image.
type PostUpdateParams struct {
	Title *string
	Text  *string
	Image *string
}

// IsEmpty reports whether no field is set.
func (p PostUpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Text == nil && p.Image == nil
}
