package note

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all notes of the active account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		userID, err := requireSession(a)
		if err != nil {
			return err
		}

		if !clearYes && !confirm(fmt.Sprintf("Delete ALL notes of %s?", userID)) {
			fmt.Println("Aborted")
			return nil
		}

		if err := a.Repo.ClearUserNotes(userID); err != nil {
			return fmt.Errorf("clear notes: %w", err)
		}
		a.Notes.Clear()

		color.Green("All notes deleted")

		return nil
	},
}

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "skip confirmation")
}
