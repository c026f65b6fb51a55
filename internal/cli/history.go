// internal/cli/history.go
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scenespeak/scenespeak/internal/app"
)

var historyJSON bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect or clear the analysis history",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List retained analysis results, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := app.New(app.Options{LocalOnly: true})
		if err != nil {
			exitErr("initializing application", err)
		}
		defer a.Close()

		results := a.History.List()

		if historyJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(results); err != nil {
				exitErr("encoding history", err)
			}
			return
		}

		if len(results) == 0 {
			fmt.Println("history is empty")
			return
		}
		for i, result := range results {
			fmt.Printf("%2d  %s  score %d/10  risk %-6s  %s\n",
				i, result.Timestamp.Format("2006-01-02 15:04:05"),
				result.Score, result.Risk, result.SceneMood)
		}
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all retained analysis results",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := app.New(app.Options{LocalOnly: true})
		if err != nil {
			exitErr("initializing application", err)
		}
		defer a.Close()

		if err := a.History.Clear(); err != nil {
			exitErr("clearing history", err)
		}
		fmt.Println("analysis history cleared")
	},
}

func init() {
	historyListCmd.Flags().BoolVar(&historyJSON, "json", false, "Print the full records as JSON")
	historyCmd.AddCommand(historyListCmd, historyClearCmd)
	RootCmd.AddCommand(historyCmd)
}
