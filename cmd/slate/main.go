package main

import (
	"os"

	"github.com/go-slate/slate/cmd/slate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
