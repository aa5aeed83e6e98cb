package note

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"aarnote/internal/domain/note"
)

var (
	editTitle       string
	editContent     string
	editImage       string
	editRemoveImage bool
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a note",
	Long: `Apply a partial update to a note: only the flags you pass
change, everything else stays as it is. --remove-image detaches the
image, since omitting --image means "leave it alone".`,
	Args: cobra.ExactArgs(1),
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

		input := note.UpdateInput{ID: args[0], RemoveImage: editRemoveImage}
		if cmd.Flags().Changed("title") {
			input.Title = &editTitle
		}
		if cmd.Flags().Changed("content") {
			input.Content = &editContent
		}
		if cmd.Flags().Changed("image") {
			input.ImageURI = &editImage
		}

		if input.Title == nil && input.Content == nil && input.ImageURI == nil && !input.RemoveImage {
			return fmt.Errorf("nothing to change; pass --title, --content, --image, or --remove-image")
		}

		if !a.Notes.Update(input) {
			return fmt.Errorf("%s", a.Notes.Err())
		}

		color.Green("Updated note %s", args[0])

		return nil
	},
}

func init() {
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "new title")
	editCmd.Flags().StringVarP(&editContent, "content", "c", "", "new content")
	editCmd.Flags().StringVarP(&editImage, "image", "i", "", "new image reference")
	editCmd.Flags().BoolVar(&editRemoveImage, "remove-image", false, "detach the image")
}
