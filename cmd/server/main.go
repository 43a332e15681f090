// Package main is the entry point for the evaluation report generator.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// @title Evaluation Report Generator API
// @version 1.0
// @description Generates lecturer evaluation reports from candidate documents with a language model.
// @BasePath /

var rootCmd = &cobra.Command{
	Use:           "evalreport",
	Short:         "Evaluation report generator",
	Long:          "Extracts text from a candidate's PDF, asks a language model for a structured evaluation report, translates it to Slovenian and optionally emails the result.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
