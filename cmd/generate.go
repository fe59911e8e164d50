package cmd

import (
	"github.com/spf13/cobra"
)

// generateCmd groups code generation used during development
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "generate code",
	Long:  `generate code checked into the repository`,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
