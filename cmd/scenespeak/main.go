// cmd/scenespeak/main.go
package main

import (
	"os"

	"github.com/scenespeak/scenespeak/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
