package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MnacsM/papnt/internal/notion"
)

func pageFromJSON(t *testing.T, raw string) notion.Page {
	t.Helper()
	var page notion.Page
	if err := json.Unmarshal([]byte(raw), &page); err != nil {
		t.Fatalf("unmarshal page: %v", err)
	}
	return page
}

func TestPageToEntry(t *testing.T) {
	page := pageFromJSON(t, `{
		"id": "page-123",
		"properties": {
			"citekey": {"type": "rich_text", "rich_text": [{"plain_text": "smithTheory2020"}]},
			"Entry Type": {"type": "select", "select": {"name": "article"}},
			"Title": {"type": "rich_text", "rich_text": [{"plain_text": "The Theory"}]},
			"Author": {"type": "multi_select", "multi_select": [{"name": "John Smith"}, {"name": "Jane Doe"}]},
			"Year": {"type": "number", "number": 2020},
			"Journal": {"type": "select", "select": {"name": "Nature"}},
			"Volume": {"type": "rich_text", "rich_text": [{"plain_text": "12"}]},
			"Issue": {"type": "rich_text", "rich_text": [{"plain_text": "3"}]},
			"Pages": {"type": "rich_text", "rich_text": [{"plain_text": "1-10"}]},
			"DOI": {"type": "rich_text", "rich_text": [{"plain_text": "10.1000/x"}]}
		}
	}`)
	toCanonical := map[string]string{
		"citekey":    "id",
		"Entry Type": "entrytype",
		"Title":      "title",
		"Author":     "author",
		"Year":       "year",
		"Journal":    "journal",
		"Volume":     "volume",
		"Issue":      "Issue",
		"Pages":      "pages",
		"DOI":        "doi",
	}

	entry := pageToEntry(page, toCanonical)

	if entry.Type != "article" {
		t.Errorf("Type = %q, want %q", entry.Type, "article")
	}
	if entry.Key != "smithTheory2020" {
		t.Errorf("Key = %q, want %q", entry.Key, "smithTheory2020")
	}
	want := map[string]string{
		"title":   "The Theory",
		"author":  "John Smith and Jane Doe",
		"year":    "2020",
		"journal": "Nature",
		"volume":  "12",
		"number":  "3",
		"pages":   "1-10",
		"doi":     "10.1000/x",
	}
	for field, v := range want {
		if entry.Fields[field] != v {
			t.Errorf("Fields[%q] = %q, want %q", field, entry.Fields[field], v)
		}
	}
	if _, ok := entry.Fields["publisher"]; ok {
		t.Error("empty publisher should be omitted")
	}
}

func TestPageToEntryDefaults(t *testing.T) {
	page := pageFromJSON(t, `{
		"id": "page-456",
		"properties": {
			"title": {"type": "rich_text", "rich_text": [{"plain_text": "Untyped"}]}
		}
	}`)

	entry := pageToEntry(page, nil)

	if entry.Type != "misc" {
		t.Errorf("Type = %q, want %q", entry.Type, "misc")
	}
	if entry.Key != "page-456" {
		t.Errorf("Key = %q, want page ID fallback", entry.Key)
	}
}

func TestUncheckedFilter(t *testing.T) {
	filter := uncheckedFilter("DOI", "rich_text")

	raw, err := json.Marshal(filter)
	if err != nil {
		t.Fatalf("marshal filter: %v", err)
	}
	got := string(raw)
	for _, want := range []string{
		`"checkbox":{"equals":false}`,
		`"property":"DOI"`,
		`"rich_text":{"is_not_empty":true}`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("filter %s missing %s", got, want)
		}
	}
}

func TestFailLogExport(t *testing.T) {
	var l failLog
	l.noDOIExtracted = append(l.noDOIExtracted, "scan.pdf")
	l.noDOIInfo = append(l.noDOIInfo, [2]string{"odd.pdf", "10.1000/missing"})

	path := filepath.Join(t.TempDir(), "skipped-files.txt")
	if err := l.export(path); err != nil {
		t.Fatalf("export: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	got := string(raw)
	for _, want := range []string{"scan.pdf", "odd.pdf", "https://doi.org/10.1000/missing"} {
		if !strings.Contains(got, want) {
			t.Errorf("log missing %q:\n%s", want, got)
		}
	}
}

func TestFailLogExportEmpty(t *testing.T) {
	var l failLog
	path := filepath.Join(t.TempDir(), "skipped-files.txt")
	if err := l.export(path); err != nil {
		t.Fatalf("export: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("empty log should not write a file")
	}
}
