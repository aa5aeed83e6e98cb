package cmd

import (
	"aarnote/cmd/aarnote/cmd/auth"
	"aarnote/cmd/aarnote/cmd/note"
)

func init() {
	rootCmd.AddCommand(auth.Cmd)
	rootCmd.AddCommand(note.Cmd)
}
