package main

import (
	"os"

	"github.com/msto63/smpl/cmd/smpl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
