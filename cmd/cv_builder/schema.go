package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/verveschool/cv-builder/internal/schemas"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the candidate JSON Schema",
	Long:  "Prints the JSON Schema that render, validate and POST /render check candidate payloads against.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), schemas.CandidateSchema())
		return err
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
