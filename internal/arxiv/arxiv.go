// Package arxiv resolves arXiv identifiers through the arXiv Atom API and
// maps the results into canonical records.
package arxiv

import (
	"fmt"
	"strings"
	"time"

	"github.com/MnacsM/papnt/internal/record"
)

// doiMarker is the literal that separates an arXiv-flavored DOI from the
// embedded arXiv identifier, e.g. "10.48550/arXiv.2101.00001".
const doiMarker = "arXiv."

// Result is the metadata returned for one arXiv paper.
type Result struct {
	Title     string
	Authors   []string // display names as published
	Published time.Time
}

// IsArxivDOI reports whether doi carries the arXiv marker and should be
// resolved through the arXiv API instead of the DOI registry.
func IsArxivDOI(doi string) bool {
	return strings.Contains(doi, "arXiv")
}

// ExtractID pulls the arXiv identifier out of an arXiv-flavored DOI by
// splitting on the "arXiv." marker.
func ExtractID(doi string) (string, error) {
	doi = strings.ReplaceAll(doi, "//", "/")
	_, id, found := strings.Cut(doi, doiMarker)
	if !found || id == "" {
		return "", fmt.Errorf("no arXiv identifier in DOI %q", doi)
	}
	return id, nil
}

// MapResult builds a canonical record from an arXiv lookup. The venue and
// publication type are fixed: everything on arXiv is recorded as a
// journal-article published at "arXiv".
//
// Author display names are split on whitespace with the last token taken
// as the family name. This misassigns multi-word family names (van der
// Waals and similar); the arXiv API exposes no structured split, so the
// heuristic is kept as a known limitation rather than patched over.
func MapResult(doi string, res Result) record.Record {
	doi = strings.ReplaceAll(doi, "//", "/")

	authors := make([]record.Person, 0, len(res.Authors))
	for _, name := range res.Authors {
		parts := strings.Fields(name)
		if len(parts) == 0 {
			continue
		}
		authors = append(authors, record.Person{
			Given:  strings.Join(parts[:len(parts)-1], " "),
			Family: parts[len(parts)-1],
		})
	}

	return record.Record{
		DOI:     doi,
		Type:    "journal-article",
		Title:   []string{res.Title},
		Authors: authors,
		Published: &record.Date{
			Year:  res.Published.Year(),
			Month: int(res.Published.Month()),
			Day:   res.Published.Day(),
		},
		ContainerTitle: []string{"arXiv"},
		Source:         record.SourceArxiv,
	}
}
