package main

import (
	"os"

	"github.com/exgen-dev/exgen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
