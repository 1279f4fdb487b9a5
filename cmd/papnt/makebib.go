package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MnacsM/papnt/internal/bibtex"
	"github.com/MnacsM/papnt/internal/notion"
)

func init() {
	rootCmd.AddCommand(makebibCmd)
}

var makebibCmd = &cobra.Command{
	Use:   "makebib <target>",
	Short: "Write a .bib file from tagged records",
	Long: `Write a .bib file from tagged records.

Collects every record whose output_target multi-select contains the
given target and writes them as BibTeX entries to <dir_save_bib>/<target>.bib.`,
	Args: cobra.ExactArgs(1),
	RunE: runMakebib,
}

func runMakebib(cmd *cobra.Command, args []string) error {
	a := mustApp()
	defer a.Close()

	if a.cfg.BibDir == "" {
		fmt.Fprintln(os.Stderr, "error: set dir_save_bib in the config file")
		os.Exit(ExitConfigError)
	}
	target := args[0]

	filter := map[string]any{
		"property":     a.propname("output_target"),
		"multi_select": map[string]any{"contains": target},
	}
	pages, err := a.notion.QueryDatabase(cmd.Context(), a.creds.DatabaseID, filter)
	if err != nil {
		return fmt.Errorf("querying database: %w", err)
	}

	// Page properties carry the configured names; entries are built from
	// the canonical ones.
	toCanonical := make(map[string]string, len(a.cfg.Propnames))
	for canonical, configured := range a.cfg.Propnames {
		toCanonical[configured] = canonical
	}

	entries := make([]bibtex.Entry, 0, len(pages))
	for _, page := range pages {
		entries = append(entries, pageToEntry(page, toCanonical))
	}

	outPath := filepath.Join(a.cfg.BibDir, target+".bib")
	if err := os.WriteFile(outPath, []byte(bibtex.Format(entries)), 0o644); err != nil {
		return fmt.Errorf("writing bib file: %w", err)
	}
	fmt.Printf("Wrote %d entries to %s\n", len(entries), outPath)
	return nil
}

// pageToEntry renders one database page as a BibTeX entry. Pages with no
// entrytype become @misc; pages with no citekey fall back to the page ID.
func pageToEntry(page notion.Page, toCanonical map[string]string) bibtex.Entry {
	props := make(map[string]notion.PageProperty, len(page.Properties))
	for name, p := range page.Properties {
		key := name
		if canonical, ok := toCanonical[name]; ok {
			key = canonical
		}
		props[key] = p
	}

	entry := bibtex.Entry{
		Type:   "misc",
		Key:    page.ID,
		Fields: make(map[string]string),
	}
	if t := props["entrytype"].Plain(); t != "" {
		entry.Type = t
	}
	if k := props["id"].Plain(); k != "" {
		entry.Key = k
	}

	set := func(field, value string) {
		if value != "" {
			entry.Fields[field] = value
		}
	}
	set("title", props["title"].Plain())
	set("author", strings.Join(props["author"].Names(), " and "))
	set("year", props["year"].Plain())
	set("journal", props["journal"].Plain())
	set("volume", props["volume"].Plain())
	set("number", props["Issue"].Plain())
	set("pages", props["pages"].Plain())
	set("publisher", props["publisher"].Plain())
	set("doi", props["doi"].Plain())
	return entry
}
