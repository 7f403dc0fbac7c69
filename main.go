package main

import (
	"os"

	"github.com/greenhope/everrich/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
