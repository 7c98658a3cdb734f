package main

import (
	"os"

	"github.com/baaaaaaaka/dir-short/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
