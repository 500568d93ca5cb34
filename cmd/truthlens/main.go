package main

import (
	"os"

	"github.com/sozercan/truthlens/internal/cli"
)

// Build variables set by ldflags
var (
	version = "dev"
	commit  = "none"
)

func main() {
	cmd := cli.NewRootCommand(version, commit)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
