package main

import (
	"os"

	"github.com/wanderplan/wanderplan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
