package controller

import (
	"errors"
	"sync"

	"golang.org/x/exp/slog"

	"aarnote/internal/domain/note"
)

const msgNoteNotFound = "Note not found"

// Notes holds the visible, sorted note list for one user session.
type Notes struct {
	repo   *note.Repository
	sorter *note.Sorter
	log    *slog.Logger

	mu      sync.RWMutex
	notes   []note.Note
	sortBy  note.SortOption
	loading bool
	errMsg  string
}

func NewNotes(repo *note.Repository, sorter *note.Sorter, log *slog.Logger) *Notes {
	return &Notes{
		repo:   repo,
		sorter: sorter,
		log:    log,
		sortBy: note.DefaultSort(),
	}
}

// Load fetches userID's notes, sorts them, and replaces the visible
// list.
func (c *Notes) Load(userID string) error {
	c.setLoading(true)
	defer c.setLoading(false)

	fetched, err := c.repo.UserNotes(userID)
	if err != nil {
		c.setError("Failed to load notes")
		return err
	}

	c.mu.Lock()
	c.notes = c.sorter.Sort(fetched, c.sortBy)
	c.errMsg = ""
	c.mu.Unlock()

	return nil
}

// Create delegates to the repository, re-inserts the new note into the
// visible list, and re-sorts. Storage failures are recorded and
// returned to the caller.
func (c *Notes) Create(userID string, input note.CreateInput) (*note.Note, error) {
	created, err := c.repo.Create(userID, input)
	if err != nil {
		c.setError("Failed to create note")
		return nil, err
	}

	c.mu.Lock()
	c.notes = c.sorter.Sort(append(c.notes, *created), c.sortBy)
	c.errMsg = ""
	c.mu.Unlock()

	return created, nil
}

// Update delegates and replaces the note in place. Reports false for
// an unknown ID or a storage failure, with the reason in Err.
func (c *Notes) Update(input note.UpdateInput) bool {
	updated, err := c.repo.Update(input)
	if err != nil {
		if errors.Is(err, note.ErrNotFound) {
			c.setError(msgNoteNotFound)
		} else {
			c.log.Error("update note", "id", input.ID, "error", err)
			c.setError("Failed to update note")
		}
		return false
	}

	c.mu.Lock()
	for i := range c.notes {
		if c.notes[i].ID == updated.ID {
			c.notes[i] = *updated
			break
		}
	}
	c.notes = c.sorter.Sort(c.notes, c.sortBy)
	c.errMsg = ""
	c.mu.Unlock()

	return true
}

func (c *Notes) Delete(id string) bool {
	removed, err := c.repo.Delete(id)
	if err != nil {
		c.log.Error("delete note", "id", id, "error", err)
		c.setError("Failed to delete note")
		return false
	}
	if !removed {
		c.setError(msgNoteNotFound)
		return false
	}

	c.mu.Lock()
	kept := c.notes[:0]
	for _, n := range c.notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	c.notes = kept
	c.errMsg = ""
	c.mu.Unlock()

	return true
}

// SetSortBy re-sorts the currently visible list in place without
// re-fetching.
func (c *Notes) SetSortBy(sortBy note.SortOption) {
	c.mu.Lock()
	c.sortBy = sortBy
	c.notes = c.sorter.Sort(c.notes, sortBy)
	c.mu.Unlock()
}

// Notes returns a copy of the visible list.
func (c *Notes) Notes() []note.Note {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]note.Note, len(c.notes))
	copy(out, c.notes)
	return out
}

func (c *Notes) SortBy() note.SortOption {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sortBy
}

func (c *Notes) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

func (c *Notes) Err() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.errMsg
}

func (c *Notes) ClearError() {
	c.mu.Lock()
	c.errMsg = ""
	c.mu.Unlock()
}

// Clear drops the visible list, e.g. on sign-out.
func (c *Notes) Clear() {
	c.mu.Lock()
	c.notes = nil
	c.errMsg = ""
	c.mu.Unlock()
}

func (c *Notes) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	c.mu.Unlock()
}

func (c *Notes) setError(msg string) {
	c.mu.Lock()
	c.errMsg = msg
	c.mu.Unlock()
}
