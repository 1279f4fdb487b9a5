// Package record defines the canonical bibliographic record that every
// metadata source is normalized into. Field names follow the CrossRef
// registry vocabulary, which downstream stages treat as authoritative.
package record

// Source identifies which adapter produced a record. It is carried for
// diagnostics only and has no effect on downstream processing.
type Source string

const (
	SourceCrossref Source = "crossref"
	SourceArxiv    Source = "arxiv"
	SourceJaLC     Source = "jalc"
	SourceBibTeX   Source = "bibtex"
)

// Person is one author or editor. Either the Given/Family pair or Name is
// populated; Name carries an unparsed display name when the source provides
// no structured split.
type Person struct {
	Given  string `json:"given,omitempty"`
	Family string `json:"family,omitempty"`
	Name   string `json:"name,omitempty"`
}

// Date is an ordered date decomposition. Month and Day are 0 when unknown.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month,omitempty"` // 1-12, 0 if unknown
	Day   int `json:"day,omitempty"`   // 1-31, 0 if unknown
}

// Parts returns the decomposition as an ordered slice, dropping trailing
// unknown components: [year], [year, month] or [year, month, day].
func (d Date) Parts() []int {
	parts := []int{d.Year}
	if d.Month == 0 {
		return parts
	}
	parts = append(parts, d.Month)
	if d.Day == 0 {
		return parts
	}
	return append(parts, d.Day)
}

// Record is the source-agnostic intermediate representation. All slice
// fields are ordered and the first element is authoritative. Absent values
// are zero values (empty string, nil slice, nil date), never empty-string
// placeholders inside slices.
//
// A Record is built fresh per lookup, read once by the serializer and then
// discarded; nothing mutates it after the adapter returns.
type Record struct {
	DOI            string   `json:"doi,omitempty"`
	Type           string   `json:"type"` // CrossRef publication-type vocabulary
	Title          []string `json:"title,omitempty"`
	Authors        []Person `json:"authors,omitempty"`
	Editors        []Person `json:"editors,omitempty"`
	Published      *Date    `json:"published,omitempty"`
	ContainerTitle []string `json:"container_title,omitempty"`
	Publisher      string   `json:"publisher,omitempty"`
	Volume         string   `json:"volume,omitempty"`
	Issue          string   `json:"issue,omitempty"`
	Page           string   `json:"page,omitempty"`
	Edition        string   `json:"edition,omitempty"`
	Subjects       []string `json:"subjects,omitempty"`
	Source         Source   `json:"source"`
}
