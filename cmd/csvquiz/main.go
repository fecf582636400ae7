package main

import (
	"os"

	"github.com/abhisek/csvquiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
