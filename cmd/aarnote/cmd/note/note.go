package note

import (
	"fmt"

	"github.com/spf13/cobra"

	"aarnote/cmd/aarnote/cmd/types"
	"aarnote/internal/app"
)

// Cmd is the parent command for note operations. All of them require an
// active session.
var Cmd = &cobra.Command{
	Use:   "note",
	Short: "Note management",
	Long:  `Create, list, view, edit, and delete your notes.`,
}

func init() {
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(getCmd)
	Cmd.AddCommand(editCmd)
	Cmd.AddCommand(deleteCmd)
	Cmd.AddCommand(clearCmd)
}

func appFromContext(cmd *cobra.Command) (*app.App, error) {
	a, ok := cmd.Context().Value(types.AppKey).(*app.App)
	if !ok || a == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return a, nil
}

// requireSession returns the active username or an instruction to sign
// in first.
func requireSession(a *app.App) (string, error) {
	current := a.Session.Current()
	if current == "" {
		return "", fmt.Errorf("not signed in; run 'aarnote auth signin' first")
	}
	return current, nil
}

// ownedNoteID verifies id belongs to the active user before a command
// touches it. The repository itself does not check ownership; the
// presentation layer scopes the visible IDs.
func ownedNoteID(a *app.App, userID, id string) error {
	n, err := a.Repo.ByID(id)
	if err != nil {
		return err
	}
	if n.UserID != userID {
		return fmt.Errorf("note not found")
	}
	return nil
}
