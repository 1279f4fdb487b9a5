package bibtex

import (
	"fmt"
	"sort"
	"strings"
)

// Entry is one BibTeX entry ready to be written out.
type Entry struct {
	Type   string
	Key    string
	Fields map[string]string
}

// fieldOrder is the order fields are written in; fields not listed follow
// alphabetically.
var fieldOrder = []string{
	"author", "editor", "title", "journal", "booktitle", "year", "month",
	"volume", "number", "pages", "publisher", "doi", "url",
}

// String formats the entry as BibTeX text. Empty fields are skipped.
func (e Entry) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("@%s{%s,\n", e.Type, e.Key))

	written := make(map[string]bool, len(e.Fields))
	for _, name := range fieldOrder {
		if value := e.Fields[name]; value != "" {
			b.WriteString(fmt.Sprintf("  %s = {%s},\n", name, escapeLatex(value)))
			written[name] = true
		}
	}

	var rest []string
	for name, value := range e.Fields {
		if value != "" && !written[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		b.WriteString(fmt.Sprintf("  %s = {%s},\n", name, escapeLatex(e.Fields[name])))
	}

	b.WriteString("}\n")
	return b.String()
}

// Format joins multiple entries into one .bib file body.
func Format(entries []Entry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, "\n")
}

// escapeLatex escapes special LaTeX characters.
func escapeLatex(s string) string {
	// Order matters: & must be first (before escapes that produce &)
	replacer := strings.NewReplacer(
		"&", `\&`,
		"%", `\%`,
		"$", `\$`,
		"#", `\#`,
		"~", `\textasciitilde{}`,
		"^", `\textasciicircum{}`,
	)
	return replacer.Replace(s)
}
