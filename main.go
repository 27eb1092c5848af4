package main

import (
	"os"

	"github.com/m-mizutani/vitalsink/pkg/controller/cli"
)

func main() {
	if cli.Run(os.Args) != nil {
		os.Exit(1)
	}
}
