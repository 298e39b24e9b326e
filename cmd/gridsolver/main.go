package main

import (
	"os"

	"svw.info/gridsolver/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
