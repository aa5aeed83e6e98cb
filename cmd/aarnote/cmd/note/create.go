package note

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"aarnote/internal/domain/note"
)

var (
	createTitle   string
	createContent string
	createImage   string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new note",
	Long: `Create a note with a title, text content, and optionally an
attached image reference. Missing fields are prompted for.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		userID, err := requireSession(a)
		if err != nil {
			return err
		}

		title := createTitle
		if title == "" {
			title = promptLine("Title: ")
		}
		if strings.TrimSpace(title) == "" {
			return fmt.Errorf("title is required")
		}

		content := createContent
		if content == "" {
			content = promptLine("Content: ")
		}
		if strings.TrimSpace(content) == "" {
			return fmt.Errorf("content is required")
		}

		created, err := a.Notes.Create(userID, note.CreateInput{
			Title:    title,
			Content:  content,
			ImageURI: createImage,
		})
		if err != nil {
			return fmt.Errorf("create note: %w", err)
		}

		color.Green("Created note %s", created.ID)

		return nil
	},
}

func promptLine(prompt string) string {
	fmt.Print(prompt)
	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		return scanner.Text()
	}
	return ""
}

func init() {
	createCmd.Flags().StringVarP(&createTitle, "title", "t", "", "note title")
	createCmd.Flags().StringVarP(&createContent, "content", "c", "", "note content")
	createCmd.Flags().StringVarP(&createImage, "image", "i", "", "image reference to attach")
}
