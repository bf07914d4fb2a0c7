package main

import (
	"github.com/pfrederiksen/weather-cli/internal/cli"
)

// Version is set via ldflags during release builds
var Version = "dev"

func main() {
	cli.Version = Version
	cli.Execute()
}
