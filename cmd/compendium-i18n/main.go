// Package main is the entry point for the compendium localization service
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "compendium-i18n",
	Short: "pt-BR localization for compendium folders and panels",
	Long: `compendium-i18n renames compendium folders and rewrites panel labels
into Brazilian Portuguese, and maintains the translation JSON files of
the content pack.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(packCmd)
}
