// Entry point for the image-encryption tool.
package main

import (
	"fmt"
	"os"

	"github.com/VishnuVardhan0007/image-encryption/internal/commands"
	"github.com/VishnuVardhan0007/image-encryption/internal/config"
)

// version is set at build time.
var version = "dev"

func main() {
	cfg := &config.Config{}

	if err := commands.NewRootCommand(cfg, version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
