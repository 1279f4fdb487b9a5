// Package main provides the papnt CLI entry point.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// configPath is the location of the YAML config file.
var configPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, errRecordsFailed) {
			os.Exit(ExitDataError)
		}
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "papnt",
	Short: "Fill a Notion paper database with bibliographic metadata",
	Long: `papnt fills a Notion paper database from DOIs (CrossRef and arXiv),
JaLC DOIs, raw BibTeX entries and local or uploaded PDF files, and
exports BibTeX files from the database.

Credentials come from NOTION_TOKEN and NOTION_DATABASE_ID (a .env file
is honored); property names and output paths come from the config file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "papnt.yaml", "Path to the config file")
	rootCmd.Version = Version
}
