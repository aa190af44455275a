package main

import (
	"os"

	"anagram/cmd/anagram/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
