package main

import "aarnote/cmd/aarnote/cmd"

func main() {
	cmd.Execute()
}
