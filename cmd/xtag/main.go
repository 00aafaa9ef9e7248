package main

import (
	"os"

	"github.com/ZanzyTHEbar/xtag/cmd/xtag/commands"
)

// Build-time variables injected via ldflags
var (
	version = "dev"
	commit  = "none"
)

func main() {
	commands.Version = version
	commands.Commit = commit

	os.Exit(commands.Execute())
}
