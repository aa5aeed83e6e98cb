package note

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sorter orders note lists. Titles compare under the configured locale's
// collation rules rather than raw byte order.
type Sorter struct {
	collator *collate.Collator
}

func NewSorter(tag language.Tag) *Sorter {
	return &Sorter{collator: collate.New(tag)}
}

// Sort returns a new slice ordered by sortBy; the input is untouched.
// Ties break on ID ascending so equal timestamps or titles still yield
// a deterministic order.
func (s *Sorter) Sort(notes []Note, sortBy SortOption) []Note {
	sorted := make([]Note, len(notes))
	copy(sorted, notes)

	sort.SliceStable(sorted, func(i, j int) bool {
		c := s.compare(sorted[i], sorted[j], sortBy.Field)
		if sortBy.Direction == Desc {
			c = -c
		}
		if c == 0 {
			return sorted[i].ID < sorted[j].ID
		}
		return c < 0
	})

	return sorted
}

// compare returns the ascending ordering of a against b on field:
// oldest-first for lastUpdate, A-to-Z for title.
func (s *Sorter) compare(a, b Note, field SortField) int {
	switch field {
	case SortByTitle:
		return s.collator.CompareString(a.Title, b.Title)
	default:
		if a.UpdatedAt.Before(b.UpdatedAt) {
			return -1
		}
		if a.UpdatedAt.After(b.UpdatedAt) {
			return 1
		}
		return 0
	}
}
