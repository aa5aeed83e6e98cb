package auth

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the active account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		current := a.Session.Current()
		if current == "" {
			fmt.Println("Not signed in")
			return nil
		}

		fmt.Println(current)

		return nil
	},
}
