package auth

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"aarnote/cmd/aarnote/cmd/types"
	"aarnote/internal/app"
	"aarnote/internal/domain/user"
)

// Cmd is the parent command for account operations.
var Cmd = &cobra.Command{
	Use:   "auth",
	Short: "Account management",
	Long:  `Sign up, sign in, sign out, and show the active account.`,
}

func init() {
	Cmd.AddCommand(signUpCmd)
	Cmd.AddCommand(signInCmd)
	Cmd.AddCommand(signOutCmd)
	Cmd.AddCommand(whoamiCmd)
}

func appFromContext(cmd *cobra.Command) (*app.App, error) {
	a, ok := cmd.Context().Value(types.AppKey).(*app.App)
	if !ok || a == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return a, nil
}

func promptUsername(preset string) string {
	if preset != "" {
		return preset
	}

	fmt.Print("Username: ")
	var username string
	_, _ = fmt.Scanln(&username)
	return username
}

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	fmt.Println()

	return string(password), nil
}

// reportAuthError prints validation failures with their field tag and
// passes infrastructure failures back up.
func reportAuthError(err error) error {
	var vErr *user.ValidationError
	if errors.As(err, &vErr) {
		if vErr.Field != "" {
			color.Red("%s: %s", vErr.Field, vErr.Message)
		} else {
			color.Red("%s", vErr.Message)
		}
		return fmt.Errorf("authentication failed")
	}

	return err
}
