// Package main provides the entry point for the cleanr CLI tool.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	rootCmd := newRootCommand(os.Stdout, os.Stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &runOptions{}

	rootCmd := &cobra.Command{
		Use:   "cleanr",
		Short: "cleanr - tabular data cleaning pipeline",
		Long: `cleanr loads a CSV, TSV or XLSX dataset, reports summary statistics,
imputes missing values, removes exact duplicate rows and removes z-score outliers.

Commands:
  clean     Run the full cleaning pipeline
  summary   Only report summary statistics`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	flags.StringP("input", "i", "", "path of the dataset to clean")
	flags.Float64P("threshold", "t", 3, "absolute z-score at which a row is an outlier")
	flags.Int("head", 5, "number of rows to preview in the summary")
	flags.String("delimiter", "", "field delimiter for delimited text (default ',' or tab for .tsv)")
	flags.String("sheet", "", "sheet to read from a spreadsheet (default first sheet)")
	flags.Bool("no-color", false, "disable colored output")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("seq-url", "", "Seq endpoint to ship logs to")
	flags.String("metrics-file", "", "write prometheus metrics to this file after the run")

	rootCmd.AddCommand(newCleanCommand(opts))
	rootCmd.AddCommand(newSummaryCommand(opts))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cleanr %s\n", version)
		},
	}
}
