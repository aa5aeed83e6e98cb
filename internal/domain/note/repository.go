package note

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"aarnote/internal/storage"
)

const (
	notesKey      = "notes"
	schemaVersion = 1
)

// noteRecord is the serialized form of a Note, field names matching the
// layout the mobile build wrote.
type noteRecord struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	ImageURI  string `json:"imageUri,omitempty"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

type noteDocument struct {
	Version int          `json:"version"`
	Notes   []noteRecord `json:"notes"`
}

// Repository stores all notes of all users in one ordered list under a
// single key, filtered by UserID at read time. Every mutation is a
// read-modify-write of the whole list; the design assumes a single
// writer.
type Repository struct {
	kv  storage.KV
	log *slog.Logger
	now func() time.Time
}

func NewRepository(kv storage.KV, log *slog.Logger) *Repository {
	return &Repository{
		kv:  kv,
		log: log,
		now: time.Now,
	}
}

// UserNotes returns userID's notes in storage order; callers sort.
func (r *Repository) UserNotes(userID string) ([]Note, error) {
	all, err := r.all()
	if err != nil {
		return nil, err
	}

	var notes []Note
	for _, n := range all {
		if n.UserID == userID {
			notes = append(notes, n)
		}
	}

	return notes, nil
}

func (r *Repository) Create(userID string, input CreateInput) (*Note, error) {
	all, err := r.all()
	if err != nil {
		return nil, err
	}

	now := r.now()
	newNote := Note{
		ID:        newID(userID, now),
		UserID:    userID,
		Title:     strings.TrimSpace(input.Title),
		Content:   strings.TrimSpace(input.Content),
		ImageURI:  input.ImageURI,
		CreatedAt: now,
		UpdatedAt: now,
	}

	all = append(all, newNote)
	if err := r.save(all); err != nil {
		return nil, err
	}

	r.log.Debug("note created", "id", newNote.ID, "user", userID)

	return &newNote, nil
}

// Update applies the supplied fields to the note with input.ID and
// refreshes UpdatedAt. Returns ErrNotFound for an unknown ID.
func (r *Repository) Update(input UpdateInput) (*Note, error) {
	all, err := r.all()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range all {
		if all[i].ID == input.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotFound
	}

	updated := all[idx]
	if input.Title != nil {
		updated.Title = strings.TrimSpace(*input.Title)
	}
	if input.Content != nil {
		updated.Content = strings.TrimSpace(*input.Content)
	}
	if input.RemoveImage {
		updated.ImageURI = ""
	} else if input.ImageURI != nil {
		updated.ImageURI = *input.ImageURI
	}
	updated.UpdatedAt = r.now()

	all[idx] = updated
	if err := r.save(all); err != nil {
		return nil, err
	}

	r.log.Debug("note updated", "id", updated.ID)

	return &updated, nil
}

// Delete removes the note with the given ID and reports whether a
// removal happened. Ownership is not checked here; callers scope the
// IDs they expose.
func (r *Repository) Delete(id string) (bool, error) {
	all, err := r.all()
	if err != nil {
		return false, err
	}

	kept := all[:0]
	for _, n := range all {
		if n.ID != id {
			kept = append(kept, n)
		}
	}

	if len(kept) == len(all) {
		return false, nil
	}

	if err := r.save(kept); err != nil {
		return false, err
	}

	r.log.Debug("note deleted", "id", id)

	return true, nil
}

func (r *Repository) ByID(id string) (*Note, error) {
	all, err := r.all()
	if err != nil {
		return nil, err
	}

	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}

	return nil, ErrNotFound
}

// ClearUserNotes removes every note owned by userID. Housekeeping.
func (r *Repository) ClearUserNotes(userID string) error {
	all, err := r.all()
	if err != nil {
		return err
	}

	kept := all[:0]
	for _, n := range all {
		if n.UserID != userID {
			kept = append(kept, n)
		}
	}

	return r.save(kept)
}

func (r *Repository) all() ([]Note, error) {
	raw, ok, err := r.kv.Get(notesKey)
	if err != nil {
		return nil, fmt.Errorf("read notes: %w", err)
	}
	if !ok {
		return nil, nil
	}

	records, err := decodeNoteDocument(raw)
	if err != nil {
		return nil, err
	}

	notes := make([]Note, 0, len(records))
	for _, rec := range records {
		notes = append(notes, Note{
			ID:        rec.ID,
			UserID:    rec.UserID,
			Title:     rec.Title,
			Content:   rec.Content,
			ImageURI:  rec.ImageURI,
			CreatedAt: time.UnixMilli(rec.CreatedAt),
			UpdatedAt: time.UnixMilli(rec.UpdatedAt),
		})
	}

	return notes, nil
}

func (r *Repository) save(notes []Note) error {
	doc := noteDocument{Version: schemaVersion, Notes: make([]noteRecord, 0, len(notes))}
	for _, n := range notes {
		doc.Notes = append(doc.Notes, noteRecord{
			ID:        n.ID,
			UserID:    n.UserID,
			Title:     n.Title,
			Content:   n.Content,
			ImageURI:  n.ImageURI,
			CreatedAt: n.CreatedAt.UnixMilli(),
			UpdatedAt: n.UpdatedAt.UnixMilli(),
		})
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}

	if err := r.kv.Set(notesKey, string(raw)); err != nil {
		return fmt.Errorf("write notes: %w", err)
	}

	return nil
}

func decodeNoteDocument(raw string) ([]noteRecord, error) {
	if strings.HasPrefix(strings.TrimSpace(raw), "[") {
		var records []noteRecord
		if err := json.Unmarshal([]byte(raw), &records); err != nil {
			return nil, fmt.Errorf("decode legacy notes: %w", err)
		}
		return records, nil
	}

	var doc noteDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}
	if doc.Version != schemaVersion {
		return nil, fmt.Errorf("unsupported notes schema version %d", doc.Version)
	}

	return doc.Notes, nil
}

// newID builds "<owner>_<millis>_<suffix>", the shape the mobile build
// used, with the suffix drawn from a fresh UUID.
func newID(userID string, now time.Time) string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%s_%d_%s", userID, now.UnixMilli(), suffix)
}
