package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "verdict",
	Short: "Verdict - declarative rule evaluation",
	Long: `Verdict evaluates declarative boolean rules against nested data records.

Rules are stored as JSON or YAML documents and reconstructed into
executable operator trees, so decision logic (authorization checks,
feature flags, eligibility rules) stays externally configurable without
embedding a scripting language.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
