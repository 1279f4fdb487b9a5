package bibtex

import (
	"reflect"
	"testing"

	"github.com/MnacsM/papnt/internal/record"
)

func TestParseEntry_FullArticle(t *testing.T) {
	src := `@article{smith2020theory,
  author = {John Smith and Jane Doe},
  title = {A Theory of
           Everything},
  journal = {Journal of Theories},
  year = {2020},
  month = {March},
  volume = {12},
  number = {3},
  pages = {100--120},
  publisher = {Theory Press},
  doi = {10.1234/theory.2020},
}`

	rec := ParseEntry(src)

	if rec.Type != "journal-article" {
		t.Errorf("Type = %q, want journal-article", rec.Type)
	}
	if rec.Source != record.SourceBibTeX {
		t.Errorf("Source = %q, want %q", rec.Source, record.SourceBibTeX)
	}
	wantAuthors := []record.Person{
		{Given: "John", Family: "Smith"},
		{Given: "Jane", Family: "Doe"},
	}
	if !reflect.DeepEqual(rec.Authors, wantAuthors) {
		t.Errorf("Authors = %+v, want %+v", rec.Authors, wantAuthors)
	}
	if len(rec.Title) != 1 {
		t.Fatalf("Title = %v, want one element", rec.Title)
	}
	if rec.Published == nil || rec.Published.Year != 2020 || rec.Published.Month != 3 {
		t.Errorf("Published = %+v, want year 2020 month 3", rec.Published)
	}
	if got := rec.ContainerTitle[0]; got != "Journal of Theories" {
		t.Errorf("ContainerTitle = %q, want Journal of Theories", got)
	}
	if rec.Volume != "12" || rec.Issue != "3" || rec.Page != "100--120" {
		t.Errorf("Volume/Issue/Page = %q/%q/%q", rec.Volume, rec.Issue, rec.Page)
	}
	if rec.DOI != "10.1234/theory.2020" {
		t.Errorf("DOI = %q", rec.DOI)
	}
}

func TestParseEntry_EntryTypes(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"article", "@article{k, title={T}}", "journal-article"},
		{"book", "@book{k, title={T}}", "book"},
		{"inbook", "@inbook{k, title={T}}", "book-chapter"},
		{"inproceedings", "@inproceedings{k, title={T}}", "proceedings-article"},
		// Unrecognized entry types default to journal-article, not misc.
		{"techreport", "@techreport{k, title={T}}", "journal-article"},
		{"no header", "title={T}", "journal-article"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseEntry(tt.src).Type; got != tt.want {
				t.Errorf("Type = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseEntry_QuotedFieldsAndVenueFallback(t *testing.T) {
	src := `@inproceedings{doe2019,
  author = "Jane Doe",
  title = "Proceedings Paper",
  booktitle = "Proc. of the Conference",
  year = "2019",
  url = "https://example.org/paper",
}`
	rec := ParseEntry(src)
	if rec.ContainerTitle[0] != "Proc. of the Conference" {
		t.Errorf("ContainerTitle = %v, want booktitle fallback", rec.ContainerTitle)
	}
	// DOI falls back to url when no doi field exists.
	if rec.DOI != "https://example.org/paper" {
		t.Errorf("DOI = %q, want url fallback", rec.DOI)
	}
}

func TestParsePersons(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []record.Person
	}{
		{
			name: "two authors",
			in:   "John Smith and Jane Doe",
			want: []record.Person{{Given: "John", Family: "Smith"}, {Given: "Jane", Family: "Doe"}},
		},
		{
			name: "middle names join the given name",
			in:   "John Ronald Reuel Tolkien",
			want: []record.Person{{Given: "John Ronald Reuel", Family: "Tolkien"}},
		},
		{
			name: "single token becomes bare family",
			in:   "Aristotle",
			want: []record.Person{{Family: "Aristotle"}},
		},
		{
			name: "empty",
			in:   "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parsePersons(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parsePersons(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMonthNumber(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"3", 3},
		{"March", 3},
		{"mar", 3},
		{"DECEMBER", 12},
		{"dec", 12},
		{"13", 0},
		{"0", 0},
		{"spring", 0},
		{"sept", 0}, // partial names are not matched by prefix
		{"janu", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := monthNumber(tt.in); got != tt.want {
			t.Errorf("monthNumber(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseEntry_YearValidation(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantNil bool
		year    int
	}{
		{"digits", "@article{k, year = {2021}}", false, 2021},
		{"not digits", "@article{k, year = {MMXXI}}", true, 0},
		{"digits with suffix", "@article{k, year = {2021a}}", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ParseEntry(tt.src)
			if tt.wantNil {
				if rec.Published != nil {
					t.Errorf("Published = %+v, want nil", rec.Published)
				}
				return
			}
			if rec.Published == nil || rec.Published.Year != tt.year {
				t.Errorf("Published = %+v, want year %d", rec.Published, tt.year)
			}
		})
	}
}

func TestEntryString(t *testing.T) {
	e := Entry{
		Type: "article",
		Key:  "smith2020",
		Fields: map[string]string{
			"author":  "Smith, John",
			"title":   "Signal & Noise at 100%",
			"journal": "J. Test",
			"year":    "2020",
		},
	}
	got := e.String()
	want := `@article{smith2020,
  author = {Smith, John},
  title = {Signal \& Noise at 100\%},
  journal = {J. Test},
  year = {2020},
}
`
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
