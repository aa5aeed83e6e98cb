package auth

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var signOutCmd = &cobra.Command{
	Use:   "signout",
	Short: "Sign out of the active account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		a.Session.SignOut()
		color.Green("Signed out")

		return nil
	},
}
