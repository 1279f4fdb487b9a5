package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doiCmd)
}

var doiCmd = &cobra.Command{
	Use:   "doi",
	Short: "Fill unchecked records from their DOI",
	Long: `Fill unchecked records from their DOI.

Queries the database for pages whose info checkbox is unset and whose
DOI property is non-empty, resolves each DOI through the registry (or
through arXiv for arXiv-issued DOIs), and writes the bibliographic
properties back.`,
	Args: cobra.NoArgs,
	RunE: runDoi,
}

func runDoi(cmd *cobra.Command, args []string) error {
	a := mustApp()
	defer a.Close()

	return a.fillUnchecked(cmd.Context(), a.propname("doi"), "rich_text", a.pipe.FromDOI)
}
