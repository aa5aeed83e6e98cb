package auth

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var signInUsername string

var signInCmd = &cobra.Command{
	Use:   "signin",
	Short: "Sign in to an existing account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		username := promptUsername(signInUsername)

		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}

		if !a.Session.SignIn(username, password) {
			return reportAuthError(a.Session.Err())
		}

		color.Green("Signed in as %s", a.Session.Current())

		return nil
	},
}

func init() {
	signInCmd.Flags().StringVarP(&signInUsername, "username", "u", "", "username to sign in with")
}
