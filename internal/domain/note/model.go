package note

import "time"

// Note belongs to exactly one user; ownership lives in UserID and the
// repository never crosses it on user-scoped queries. ImageURI is an
// opaque resource reference handed back unchanged.
type Note struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	ImageURI  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateInput carries the caller-supplied fields of a new note. The
// repository trims but does not reject empty title/content; that
// validation belongs to the caller.
type CreateInput struct {
	Title    string
	Content  string
	ImageURI string
}

// UpdateInput is a partial update: nil pointer fields are left
// unchanged. RemoveImage clears ImageURI explicitly, since a nil
// pointer cannot distinguish "not supplied" from "clear it".
type UpdateInput struct {
	ID          string
	Title       *string
	Content     *string
	ImageURI    *string
	RemoveImage bool
}

type SortField string

const (
	SortByLastUpdate SortField = "lastUpdate"
	SortByTitle      SortField = "title"
)

type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// SortOption is the user-selected ordering axis and polarity. It is not
// persisted across restarts.
type SortOption struct {
	Field     SortField
	Direction SortDirection
}

// DefaultSort is newest-first by last update.
func DefaultSort() SortOption {
	return SortOption{Field: SortByLastUpdate, Direction: Desc}
}
