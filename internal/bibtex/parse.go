// Package bibtex parses single BibTeX entries into canonical records and
// formats records fetched back out of the database as BibTeX text.
package bibtex

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/MnacsM/papnt/internal/record"
)

// entryHeaderRe matches the leading "@type{key," of an entry.
var entryHeaderRe = regexp.MustCompile(`^@(\w+)\s*\{\s*([^,]+),`)

// fieldNames are the fields extracted from an entry body.
var fieldNames = []string{
	"author", "editor", "title", "year", "month",
	"journal", "booktitle", "pages", "volume",
	"number", "publisher", "doi", "url",
}

// fieldRes matches "field = {value}" or `field = "value"` forms,
// case-insensitively, with values allowed to span lines.
var fieldRes = func() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp, len(fieldNames))
	for _, f := range fieldNames {
		res[f] = regexp.MustCompile(`(?is)` + f + `\s*=\s*[{"](.*?)[}"],?`)
	}
	return res
}()

// entryTypes maps BibTeX entry types to the registry publication-type
// vocabulary. Unrecognized types fall back to journal-article, unlike the
// misc/article defaults used elsewhere; the asymmetry matches how existing
// databases were populated, so it is kept rather than unified.
var entryTypes = map[string]string{
	"article":       "journal-article",
	"book":          "book",
	"inbook":        "book-chapter",
	"inproceedings": "proceedings-article",
}

// monthNames maps lowercase English month names to month numbers; the
// three-letter abbreviations are derived from the same table.
var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// ParseEntry extracts one canonical record from a raw BibTeX entry.
// Missing fields are simply absent from the record; an entry without a
// recognizable "@type{key," header is treated as misc. Parsing never
// fails: downstream stages reject records that lack required data.
func ParseEntry(src string) record.Record {
	src = strings.TrimSpace(src)

	entryType := "misc"
	if m := entryHeaderRe.FindStringSubmatch(src); m != nil {
		entryType = strings.ToLower(m[1])
	}
	pubType, ok := entryTypes[entryType]
	if !ok {
		pubType = "journal-article"
	}

	fields := make(map[string]string, len(fieldNames))
	for _, f := range fieldNames {
		if m := fieldRes[f].FindStringSubmatch(src); m != nil {
			fields[f] = strings.TrimSpace(m[1])
		}
	}

	rec := record.Record{
		Type:      pubType,
		Authors:   parsePersons(fields["author"]),
		Editors:   parsePersons(fields["editor"]),
		Page:      fields["pages"],
		Volume:    fields["volume"],
		Issue:     fields["number"],
		Publisher: fields["publisher"],
		Source:    record.SourceBibTeX,
	}

	if title, ok := fields["title"]; ok {
		rec.Title = []string{title}
	}

	if venue := firstNonEmpty(fields["journal"], fields["booktitle"]); venue != "" {
		rec.ContainerTitle = []string{venue}
	}

	// DOI falls back to the url field; absent both, it stays empty.
	rec.DOI = firstNonEmpty(fields["doi"], fields["url"])

	if year, ok := parseYear(fields["year"]); ok {
		rec.Published = &record.Date{
			Year:  year,
			Month: monthNumber(fields["month"]),
		}
	}

	return rec
}

// parsePersons splits a BibTeX name list on the literal token "and", then
// splits each segment on whitespace: the last token is the family name and
// everything before it joins into the given name. Single-token segments
// become a bare family name.
func parsePersons(s string) []record.Person {
	if s == "" {
		return nil
	}
	var persons []record.Person
	for _, name := range strings.Split(s, "and") {
		parts := strings.Fields(name)
		if len(parts) == 0 {
			continue
		}
		if len(parts) == 1 {
			persons = append(persons, record.Person{Family: parts[0]})
			continue
		}
		persons = append(persons, record.Person{
			Given:  strings.Join(parts[:len(parts)-1], " "),
			Family: parts[len(parts)-1],
		})
	}
	return persons
}

// parseYear accepts only all-digit year values.
func parseYear(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return year, true
}

// monthNumber normalizes a month given as a bare integer, a three-letter
// English abbreviation or a full English month name. Anything else is 0:
// truncations like "sept" or "janu" are deliberately not matched by prefix,
// since a partial name in a .bib file is as likely a typo as an
// abbreviation.
func monthNumber(s string) int {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= 12 {
			return n
		}
		return 0
	}
	for i, name := range monthNames {
		if s == name || (len(s) == 3 && s == name[:3]) {
			return i + 1
		}
	}
	return 0
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
