package note

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a note",
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

		if !deleteYes && !confirm(fmt.Sprintf("Delete note %s?", args[0])) {
			fmt.Println("Aborted")
			return nil
		}

		if !a.Notes.Delete(args[0]) {
			return fmt.Errorf("%s", a.Notes.Err())
		}

		color.Green("Deleted note %s", args[0])

		return nil
	},
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	var answer string
	_, _ = fmt.Scanln(&answer)
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip confirmation")
}
