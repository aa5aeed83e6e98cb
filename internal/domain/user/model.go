package user

import "time"

// User is a registered account. Usernames are stored trimmed and
// compared case-sensitively; the password is kept only as a hash.
type User struct {
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
