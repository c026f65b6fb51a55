// internal/cli/serve.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/scenespeak/scenespeak/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP analysis server",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := app.New(app.Options{})
		if err != nil {
			exitErr("initializing application", err)
		}
		if err := a.Run(); err != nil {
			exitErr("running server", err)
		}
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
