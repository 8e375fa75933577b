package main

import (
	"os"

	"spent/cmd/spent/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
