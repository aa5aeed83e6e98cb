package user

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"aarnote/internal/storage"
)

const (
	usersKey       = "users"
	currentUserKey = "current_user"

	schemaVersion = 1
)

// userRecord is the serialized form of a User. Field names and the
// millisecond timestamps match the layout the mobile build wrote, so an
// existing store remains readable.
type userRecord struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
	CreatedAt    int64  `json:"createdAt"`
}

type userDocument struct {
	Version int          `json:"version"`
	Users   []userRecord `json:"users"`
}

// Repository persists the full user list and the session pointer in the
// key-value store. Every mutation is a read-modify-write of the whole
// list; the design assumes a single writer.
type Repository struct {
	kv storage.KV
}

func NewRepository(kv storage.KV) *Repository {
	return &Repository{kv: kv}
}

func (r *Repository) Users() ([]User, error) {
	raw, ok, err := r.kv.Get(usersKey)
	if err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}
	if !ok {
		return nil, nil
	}

	records, err := decodeUserDocument(raw)
	if err != nil {
		return nil, err
	}

	users := make([]User, 0, len(records))
	for _, rec := range records {
		users = append(users, User{
			Username:     rec.Username,
			PasswordHash: rec.PasswordHash,
			CreatedAt:    time.UnixMilli(rec.CreatedAt),
		})
	}

	return users, nil
}

func (r *Repository) SaveUsers(users []User) error {
	doc := userDocument{Version: schemaVersion, Users: make([]userRecord, 0, len(users))}
	for _, u := range users {
		doc.Users = append(doc.Users, userRecord{
			Username:     u.Username,
			PasswordHash: u.PasswordHash,
			CreatedAt:    u.CreatedAt.UnixMilli(),
		})
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}

	if err := r.kv.Set(usersKey, string(raw)); err != nil {
		return fmt.Errorf("write users: %w", err)
	}

	return nil
}

// CurrentUser returns the persisted session pointer; an empty string
// means logged out.
func (r *Repository) CurrentUser() (string, error) {
	username, _, err := r.kv.Get(currentUserKey)
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}

	return username, nil
}

func (r *Repository) SetCurrentUser(username string) error {
	if err := r.kv.Set(currentUserKey, username); err != nil {
		return fmt.Errorf("write session: %w", err)
	}

	return nil
}

func (r *Repository) ClearCurrentUser() error {
	if err := r.kv.Delete(currentUserKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}

// decodeUserDocument accepts the versioned envelope or, for stores
// written by the mobile build, a bare JSON array. Anything else fails
// fast rather than being silently coerced.
func decodeUserDocument(raw string) ([]userRecord, error) {
	if strings.HasPrefix(strings.TrimSpace(raw), "[") {
		var records []userRecord
		if err := json.Unmarshal([]byte(raw), &records); err != nil {
			return nil, fmt.Errorf("decode legacy users: %w", err)
		}
		return records, nil
	}

	var doc userDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	if doc.Version != schemaVersion {
		return nil, fmt.Errorf("unsupported users schema version %d", doc.Version)
	}

	return doc.Users, nil
}
