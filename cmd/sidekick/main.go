package main

import (
	"os"

	"github.com/sidekick-cli/sidekick/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
