package main

import (
	"os"

	"github.com/Polaris-F/cockpit-tools/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
