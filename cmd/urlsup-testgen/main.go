package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/urlsup-dev/urlsup-testgen/internal/cli"
	"github.com/urlsup-dev/urlsup-testgen/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "urlsup-testgen",
	Short: "Generate test fixtures for urlsup",
	Long: `Generates a fixed directory tree of Markdown files containing sample URLs
for exercising the urlsup link checker.

The tool creates test-links-dir/ with three levels of nesting and one
fixture document per level (working, broken, and mixed URLs), then makes
sure .gitignore excludes the generated tree. Running it again is safe:
directories are left in place and the documents are rewritten to their
fixed content.

Run without arguments to generate the fixtures.`,
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
	RunE:          runGenerate,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the fixture tree",
	Long:  `Generate the fixture tree and update .gitignore (same as running with no arguments).`,
	RunE:  runGenerate,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	return cli.RunAll(cli.NewGenerateContext())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
