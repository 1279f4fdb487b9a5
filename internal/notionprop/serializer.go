package notionprop

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MnacsM/papnt/internal/citekey"
	"github.com/MnacsM/papnt/internal/record"
)

// maxMultiSelect is Notion's ceiling on multi-select option counts.
const maxMultiSelect = 100

// entryTypes maps registry publication types to BibTeX entry types for the
// destination's entrytype field. Unmapped types become misc. This table is
// independent of the per-source tables used while building records.
var entryTypes = map[string]string{
	"journal-article":     "article",
	"book":                "book",
	"book-chapter":        "inbook",
	"proceedings-article": "inproceedings",
}

// Result carries a serialized property set together with the human-readable
// notes produced along the way (currently author-truncation notices). Notes
// are per-record; a Result is never reused across records.
type Result struct {
	Properties map[string]*Value `json:"properties"`
	Notes      []string          `json:"notes,omitempty"`
}

// FromRecord serializes a canonical record into a Notion property set.
// propnames renames destination keys; any canonical key absent from the
// mapping is emitted under its own name. Fields with no value in the
// record are omitted from the output.
func FromRecord(rec record.Record, propnames map[string]string) (*Result, error) {
	if len(rec.Title) == 0 {
		return nil, errors.New("record has no title")
	}
	if rec.Published == nil || rec.Published.Year == 0 {
		return nil, errors.New("record has no publication year")
	}

	authors, note, err := resolveAuthors(rec.Authors)
	if err != nil {
		return nil, err
	}
	if len(authors) == 0 {
		return nil, errors.New("record has no authors")
	}

	year := rec.Published.Year
	nameParts := strings.Split(authors[0], " ")
	firstFamily := nameParts[len(nameParts)-1]
	recordName := firstFamily + strconv.Itoa(year)

	entryType, ok := entryTypes[rec.Type]
	if !ok {
		entryType = "misc"
	}
	key := citekey.Make(firstFamily, rec.Title[0], year)

	var journal any
	if len(rec.ContainerTitle) > 0 {
		journal = rec.ContainerTitle[0]
	}
	var subjects any
	if len(rec.Subjects) > 0 {
		subjects = rec.Subjects
	}

	result := &Result{Properties: make(map[string]*Value)}
	if note != "" {
		result.Notes = append(result.Notes, note)
	}

	fields := []struct {
		name    string
		content any
		kind    Kind
	}{
		{"Name", recordName, KindTitle},
		{"doi", orNil(rec.DOI), KindRichText},
		{"edition", orNil(rec.Edition), KindRichText},
		{"First", authors[0], KindSelect},
		{"author", authors, KindMultiSelect},
		{"title", rec.Title[0], KindRichText},
		{"year", year, KindNumber},
		{"journal", journal, KindSelect},
		{"volume", orNil(rec.Volume), KindRichText},
		{"Issue", orNil(rec.Issue), KindRichText},
		{"pages", orNil(rec.Page), KindRichText},
		{"publisher", orNil(rec.Publisher), KindSelect},
		{"Subject", subjects, KindMultiSelect},
		{"id", key, KindRichText},
		{"entrytype", entryType, KindSelect},
	}

	for _, f := range fields {
		value, err := NewValue(f.content, f.kind)
		if err != nil {
			var typeErr *InvalidPropertyTypeError
			if errors.As(err, &typeErr) {
				typeErr.Field = f.name
			}
			return nil, err
		}
		if value == nil {
			continue
		}
		name := propnames[f.name]
		if name == "" {
			name = f.name
		}
		result.Properties[name] = value
	}

	return result, nil
}

// resolveAuthors converts person entries to display strings: "given
// family" when both parts exist, the family alone with spaces replaced by
// underscores when only the family exists (so the value survives Notion's
// categorical constraints), or the raw display name. An entry resolving to
// none of these fails with MissingAuthorError.
//
// Notion caps multi-select values at 100, so an over-long author list keeps
// the first 99 and the final author and reports the dropped middle in a
// note rather than truncating silently.
func resolveAuthors(persons []record.Person) ([]string, string, error) {
	authors := make([]string, 0, len(persons))
	for i, p := range persons {
		switch {
		case p.Given != "" && p.Family != "":
			authors = append(authors, p.Given+" "+p.Family)
		case p.Family != "":
			authors = append(authors, strings.ReplaceAll(p.Family, " ", "_"))
		case p.Name != "":
			authors = append(authors, p.Name)
		default:
			return nil, "", &MissingAuthorError{Index: i}
		}
	}

	if len(authors) <= maxMultiSelect {
		return authors, "", nil
	}

	dropped := authors[maxMultiSelect-1 : len(authors)-1]
	note := fmt.Sprintf("From the 100th to the second to last author: %s",
		strings.Join(dropped, "; "))
	kept := append(authors[:maxMultiSelect-1:maxMultiSelect-1], authors[len(authors)-1])
	return kept, note, nil
}

// orNil maps an empty string to nil so the property is omitted instead of
// emitted empty.
func orNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}
