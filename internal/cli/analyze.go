// internal/cli/analyze.go
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/scenespeak/scenespeak/internal/app"
	"github.com/scenespeak/scenespeak/internal/services"
)

var (
	analyzeImage  bool
	analyzeLocal  bool
	analyzeFormat string
	analyzeOut    string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze dialogue from a file or stdin",
	Long: "Reads screenplay dialogue from the given file (or stdin when omitted or \"-\"), " +
		"runs one analysis and prints the report. The result is recorded in history.",
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		text, err := readInput(args)
		if err != nil {
			exitErr("reading input", err)
		}

		a, err := app.New(app.Options{LocalOnly: analyzeLocal})
		if err != nil {
			exitErr("initializing application", err)
		}
		defer a.Close()

		outcome, err := a.Analyzer.Analyze(context.Background(), services.AnalyzeRequest{
			Text:     text,
			HasImage: analyzeImage,
		})
		if err != nil {
			exitErr("analyzing dialogue", err)
		}

		if outcome.Notice != "" {
			fmt.Fprintln(os.Stderr, outcome.Notice)
		}

		export, err := a.Export.Export(outcome.Result, analyzeFormat)
		if err != nil {
			exitErr("rendering report", err)
		}

		if analyzeOut != "" {
			if err := os.WriteFile(analyzeOut, export.Content, 0644); err != nil {
				exitErr("writing report", err)
			}
			fmt.Printf("report written to %s\n", analyzeOut)
			return
		}

		os.Stdout.Write(export.Content)
	},
}

func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(args[0])
	return string(data), err
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeImage, "image", false, "Mark that a scene image accompanies the dialogue")
	analyzeCmd.Flags().BoolVar(&analyzeLocal, "local", false, "Skip the remote service and analyze locally")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "txt", "Report format: txt, json or pdf")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Write the report to a file instead of stdout")
	RootCmd.AddCommand(analyzeCmd)
}
