// Package main provides the movieqa CLI entrypoint.
package main

import (
	"os"

	"github.com/ProjetoPAA/projetoPAA/cmd/movieqa/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
