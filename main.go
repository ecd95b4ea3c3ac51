package main

import (
	"os"

	"github.com/kinetic-cards/portfolio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
