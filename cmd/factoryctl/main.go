package main

import (
	"os"

	"github.com/msto63/lazyfactory/cmd/factoryctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
