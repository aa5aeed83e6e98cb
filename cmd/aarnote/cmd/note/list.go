package note

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"aarnote/internal/domain/note"
	"aarnote/internal/utils/format"
)

var (
	listSort      string
	listDirection string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your notes",
	Long: `List the notes of the active account.

Sorting: --sort lastUpdate (default, newest first) or --sort title
(A to Z); --direction asc|desc flips the order.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		userID, err := requireSession(a)
		if err != nil {
			return err
		}

		sortBy, err := parseSortOption()
		if err != nil {
			return err
		}

		if err := a.Notes.Load(userID); err != nil {
			return fmt.Errorf("load notes: %w", err)
		}
		a.Notes.SetSortBy(sortBy)

		notes := a.Notes.Notes()
		if len(notes) == 0 {
			fmt.Println("No notes yet")
			return nil
		}

		now := time.Now()
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TITLE\tUPDATED\tIMAGE\tID")
		for _, n := range notes {
			image := "-"
			if n.ImageURI != "" {
				image = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", n.Title, format.Relative(n.UpdatedAt, now), image, n.ID)
		}

		return w.Flush()
	},
}

// parseSortOption maps the --sort/--direction flags onto a SortOption,
// keeping the per-field default polarity: newest first for lastUpdate,
// A to Z for title.
func parseSortOption() (note.SortOption, error) {
	var field note.SortField
	switch listSort {
	case "", string(note.SortByLastUpdate):
		field = note.SortByLastUpdate
	case string(note.SortByTitle):
		field = note.SortByTitle
	default:
		return note.SortOption{}, fmt.Errorf("unknown sort field %q", listSort)
	}

	var direction note.SortDirection
	switch listDirection {
	case "":
		direction = note.Desc
		if field == note.SortByTitle {
			direction = note.Asc
		}
	case string(note.Asc):
		direction = note.Asc
	case string(note.Desc):
		direction = note.Desc
	default:
		return note.SortOption{}, fmt.Errorf("unknown sort direction %q", listDirection)
	}

	return note.SortOption{Field: field, Direction: direction}, nil
}

func init() {
	listCmd.Flags().StringVarP(&listSort, "sort", "s", "", "sort field: lastUpdate or title")
	listCmd.Flags().StringVarP(&listDirection, "direction", "d", "", "sort direction: asc or desc")
}
