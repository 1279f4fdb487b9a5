package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/MnacsM/papnt/internal/pdf"
)

func init() {
	rootCmd.AddCommand(pdfCmd)
}

var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Fill unchecked records from their uploaded PDF",
	Long: `Fill unchecked records from their uploaded PDF.

Queries the database for pages whose info checkbox is unset and whose
pdf property holds an uploaded file, downloads the file, extracts a DOI
from the text, and fills the page the same way the doi command does.
Pages whose PDF yields no DOI are left untouched.`,
	Args: cobra.NoArgs,
	RunE: runPdf,
}

// downloadClient fetches uploaded files from Notion's short-lived S3
// URLs. Those are plain GETs with no auth, so the API client is not
// involved.
var downloadClient = &http.Client{Timeout: 60 * time.Second}

func runPdf(cmd *cobra.Command, args []string) error {
	a := mustApp()
	defer a.Close()

	ctx := cmd.Context()
	pdfProp := a.propname("pdf")
	pages, err := a.notion.QueryDatabase(ctx, a.creds.DatabaseID, uncheckedFilter(pdfProp, "files"))
	if err != nil {
		return fmt.Errorf("querying database: %w", err)
	}

	var failed int
	for _, page := range pages {
		urls := page.Properties[pdfProp].FileURLs()
		if len(urls) == 0 {
			continue
		}
		doi, err := extractDOIFromURL(ctx, urls[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "reading PDF on page %s: %v\n", page.ID, err)
			failed++
			continue
		}
		if doi == "" {
			fmt.Fprintf(os.Stderr, "no DOI found in PDF on page %s\n", page.ID)
			continue
		}

		result, err := a.pipe.FromDOI(ctx, doi)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %q: %v\n", doi, err)
			failed++
			continue
		}
		if err := a.applyResult(ctx, page.ID, result); err != nil {
			fmt.Fprintf(os.Stderr, "updating %q: %v\n", doi, err)
			failed++
			continue
		}
		fmt.Printf("Updated: %s\n", doi)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d records failed: %w", failed, len(pages), errRecordsFailed)
	}
	return nil
}

// extractDOIFromURL downloads a PDF to a temporary file and extracts a
// DOI from it. An absent DOI is not an error.
func extractDOIFromURL(ctx context.Context, fileURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := downloadClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("downloading file: status %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp("", "papnt-*.pdf")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	_, err = io.Copy(tmp, resp.Body)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", err
	}

	return pdf.ExtractDOI(tmp.Name())
}
