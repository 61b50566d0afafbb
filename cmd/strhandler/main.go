package main

import (
	"os"

	"github.com/msto63/stringhandler/cmd/strhandler/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitStatus(err))
	}
}
