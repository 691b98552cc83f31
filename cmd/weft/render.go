package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/weft/internal/cli"
)

// renderCmd renders one or more template documents to stdout or files.
var renderCmd = &cobra.Command{
	Use:   "render <document>...",
	Short: "Render template documents against a data context",
	Long:  `Renders one or more YAML template documents against a shared context file. Multiple documents render concurrently; stdout output keeps argument order.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		contextPath, _ := cmd.Flags().GetString("context")
		outDir, _ := cmd.Flags().GetString("out")
		pretty, _ := cmd.Flags().GetBool("pretty")
		concurrency, _ := cmd.Flags().GetInt("concurrency")
		debug, _ := cmd.Flags().GetBool("debug")

		err := cli.RunRender(cmd.Context(), cli.RenderOptions{
			Documents:   args,
			ContextPath: contextPath,
			OutDir:      outDir,
			Pretty:      pretty,
			Concurrency: concurrency,
			Debug:       debug,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("context", "c", "", "YAML context file")
	renderCmd.Flags().StringP("out", "o", "", "Write outputs to this directory instead of stdout")
	renderCmd.Flags().Bool("pretty", false, "Render markdown output for the terminal")
	renderCmd.Flags().Int("concurrency", 0, "Maximum documents rendered in parallel (0 = unbounded)")
}
