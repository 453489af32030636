package main

import (
	"os"

	"github.com/advisehq/advisor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
