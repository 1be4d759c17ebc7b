package main

import (
	"github.com/spf13/cobra"
	"github.com/urlsup-dev/urlsup-testgen/internal/cli"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show fixture tree status",
	Long:  `Report which fixture directories and documents currently exist and whether .gitignore excludes the generated tree. Does not modify anything.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	return cli.Status(cli.NewGenerateContext())
}
