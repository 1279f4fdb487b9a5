package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(jalcCmd)
}

var jalcCmd = &cobra.Command{
	Use:   "jalc",
	Short: "Fill unchecked records via the Japan Link Center",
	Long: `Fill unchecked records via the Japan Link Center.

Like the doi command, but resolves each DOI through the JaLC REST API
instead of the default registry. Useful for Japanese journals that are
registered with JaLC only.`,
	Args: cobra.NoArgs,
	RunE: runJalc,
}

func runJalc(cmd *cobra.Command, args []string) error {
	a := mustApp()
	defer a.Close()

	return a.fillUnchecked(cmd.Context(), a.propname("doi"), "rich_text", a.pipe.FromJaLC)
}
