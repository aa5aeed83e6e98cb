package auth

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var signUpUsername string

var signUpCmd = &cobra.Command{
	Use:   "signup",
	Short: "Register a new account",
	Long: `Register a local account. The password is hashed before it is
stored; the plaintext never touches disk. A successful sign-up also
signs you in.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		username := promptUsername(signUpUsername)

		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}

		confirm, err := promptPassword("Repeat password: ")
		if err != nil {
			return err
		}

		if password != confirm {
			return fmt.Errorf("passwords do not match")
		}

		if !a.Session.SignUp(username, password) {
			return reportAuthError(a.Session.Err())
		}

		color.Green("Signed up as %s", a.Session.Current())

		return nil
	},
}

func init() {
	signUpCmd.Flags().StringVarP(&signUpUsername, "username", "u", "", "username to register")
}
