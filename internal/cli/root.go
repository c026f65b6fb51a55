// internal/cli/root.go

// Package cli implements the scenespeak command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "scenespeak",
	Short: "Screenplay dialogue naturalness analysis",
	Long: "SceneSpeak analyzes screenplay dialogue for naturalness: a quality score, " +
		"risk level, per-character breakdown, emotion profile, scene mood and an " +
		"estimated spoken duration. Results come from the remote analysis service " +
		"when configured, with a deterministic local fallback.",
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
