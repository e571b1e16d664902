package main

import (
	"os"

	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/cmd/ai/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
