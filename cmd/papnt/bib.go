package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/MnacsM/papnt/internal/notionprop"
)

func init() {
	rootCmd.AddCommand(bibCmd)
}

var bibCmd = &cobra.Command{
	Use:   "bib",
	Short: "Fill unchecked records from pasted BibTeX",
	Long: `Fill unchecked records from pasted BibTeX.

Queries the database for pages whose info checkbox is unset and whose
bibtex property holds a raw BibTeX entry, parses the entry, and writes
the bibliographic properties back. No network lookup is involved.`,
	Args: cobra.NoArgs,
	RunE: runBib,
}

func runBib(cmd *cobra.Command, args []string) error {
	a := mustApp()
	defer a.Close()

	return a.fillUnchecked(cmd.Context(), a.propname("bibtex"), "rich_text",
		func(_ context.Context, src string) (*notionprop.Result, error) {
			return a.pipe.FromBibTeX(src)
		})
}
