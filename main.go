package main

import (
	"os"

	"github.com/iburimskiy/charro-ambient/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
