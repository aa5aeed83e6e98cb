package note

import "errors"

// ErrNotFound reports a lookup or update against an unknown note ID.
// It is a domain-expected outcome, distinct from storage failures.
var ErrNotFound = errors.New("note not found")
