package main

import (
	"os"

	"github.com/Ryuk2git/infogain/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
