package main

import (
	"os"

	"github.com/ytscript/ytscript/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
