package domain

// Media is an account or channel that publications are attributed to.
// The (Title, Username) pair is unique.
type Media struct {
	ID       int64
	Title    string
	Username string
}

// MediaUpdateParams holds the fields of a partial media update.
// A nil field is left unchanged.
type MediaUpdateParams struct {
	Title    *string
	Username *string
}

// IsEmpty reports whether no field is set.
func (p MediaUpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Username == nil
}
