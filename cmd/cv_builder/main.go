// Package main provides the entry point for the cv_builder CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "cv_builder",
	Short:        "Table-styled CV PDF builder",
	Long:         "cv_builder turns structured candidate JSON into a paginated, table-styled CV PDF, from files or over HTTP.",
	SilenceUsage: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
