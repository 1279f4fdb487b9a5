package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MnacsM/papnt/internal/notionprop"
	"github.com/MnacsM/papnt/internal/pdf"
)

func init() {
	rootCmd.AddCommand(pathsCmd)
}

var pathsCmd = &cobra.Command{
	Use:   "paths <path>...",
	Short: "Add records from local PDF files",
	Long: `Add records from local PDF files.

Each argument names a PDF file or a directory to scan recursively for
PDFs. For every file a DOI is extracted from the text, resolved, and a
new page is created from the result. Files whose DOI cannot be
extracted or resolved are listed in skipped-files.txt; unresolvable
files still get a page holding just the filename, so the record can be
completed by hand.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPaths,
}

func runPaths(cmd *cobra.Command, args []string) error {
	a := mustApp()
	defer a.Close()

	var pdfPaths []string
	for _, arg := range args {
		found, err := collectPDFs(arg)
		if err != nil {
			return err
		}
		pdfPaths = append(pdfPaths, found...)
	}
	if len(pdfPaths) == 0 {
		return fmt.Errorf("no PDF files found")
	}

	var failures failLog
	for _, path := range pdfPaths {
		if err := a.addRecordFromPDF(cmd.Context(), path, &failures); err != nil {
			return err
		}
	}
	return failures.export("skipped-files.txt")
}

// collectPDFs expands one argument into PDF file paths. A directory is
// walked recursively; a file must carry the .pdf suffix.
func collectPDFs(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		if !strings.EqualFold(filepath.Ext(path), ".pdf") {
			return nil, fmt.Errorf("not a PDF file or directory: %s", path)
		}
		return []string{path}, nil
	}

	var found []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(p), ".pdf") {
			found = append(found, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// addRecordFromPDF creates one page for one local PDF. Extraction and
// resolution failures are logged, not returned; only a failing page
// creation aborts the run.
func (a *app) addRecordFromPDF(ctx context.Context, path string, failures *failLog) error {
	name := filepath.Base(path)

	doi, err := pdf.ExtractDOI(path)
	if err != nil || doi == "" {
		failures.noDOI(name)
		return nil
	}

	result, err := a.pipe.FromDOI(ctx, doi)
	if err != nil {
		failures.noInfo(name, doi)
		return a.createFallbackPage(ctx, name)
	}

	props := result.Properties
	props["info"] = notionprop.NewCheckbox(true)
	pageID, err := a.notion.CreatePage(ctx, a.creds.DatabaseID, props)
	if err != nil {
		return fmt.Errorf("creating page for %s: %w", name, err)
	}
	for _, note := range result.Notes {
		if err := a.notion.AppendParagraph(ctx, pageID, note); err != nil {
			return err
		}
	}
	fmt.Printf("Recorded: %s\n", path)
	return nil
}

// createFallbackPage records just the filename so the entry can be
// completed by hand later.
func (a *app) createFallbackPage(ctx context.Context, filename string) error {
	title, err := notionprop.NewValue(filename, notionprop.KindTitle)
	if err != nil {
		return err
	}
	props := map[string]*notionprop.Value{a.propname("Name"): title}
	if _, err := a.notion.CreatePage(ctx, a.creds.DatabaseID, props); err != nil {
		return fmt.Errorf("creating fallback page for %s: %w", filename, err)
	}
	return nil
}

// failLog collects files that could not be fully recorded.
type failLog struct {
	noDOIExtracted []string
	noDOIInfo      [][2]string
}

func (l *failLog) noDOI(filename string) {
	fmt.Fprintf(os.Stderr, "DOI could not be extracted from PDF: %s\n", filename)
	l.noDOIExtracted = append(l.noDOIExtracted, filename)
}

func (l *failLog) noInfo(filename, doi string) {
	fmt.Fprintf(os.Stderr, "No information on found DOI: %s (%s)\n", filename, doi)
	l.noDOIInfo = append(l.noDOIInfo, [2]string{filename, doi})
}

// export writes the skipped files to path. Nothing is written when every
// file went through.
func (l *failLog) export(path string) error {
	if len(l.noDOIExtracted) == 0 && len(l.noDOIInfo) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("# DOI could not be extracted:\n")
	for _, filename := range l.noDOIExtracted {
		fmt.Fprintf(&b, "%s\n", filename)
	}
	b.WriteString("\n# No information on found DOI:\n")
	for _, entry := range l.noDOIInfo {
		fmt.Fprintf(&b, "%s\n", entry[0])
		if entry[1] != "" {
			fmt.Fprintf(&b, "https://doi.org/%s\n", entry[1])
		}
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing skip log: %w", err)
	}
	fmt.Fprintf(os.Stderr, "some files were skipped; see %s\n", path)
	return nil
}
