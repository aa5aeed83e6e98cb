package note

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"aarnote/internal/utils/format"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		userID, err := requireSession(a)
		if err != nil {
			return err
		}

		if err := ownedNoteID(a, userID, args[0]); err != nil {
			return err
		}

		n, err := a.Repo.ByID(args[0])
		if err != nil {
			return err
		}

		now := time.Now()
		fmt.Printf("Title:   %s\n", n.Title)
		fmt.Printf("Created: %s (%s)\n", n.CreatedAt.Format("Jan 2, 2006 15:04"), format.Relative(n.CreatedAt, now))
		fmt.Printf("Updated: %s (%s)\n", n.UpdatedAt.Format("Jan 2, 2006 15:04"), format.Relative(n.UpdatedAt, now))
		if n.ImageURI != "" {
			fmt.Printf("Image:   %s\n", n.ImageURI)
		}
		fmt.Println()
		fmt.Println(n.Content)

		return nil
	},
}
