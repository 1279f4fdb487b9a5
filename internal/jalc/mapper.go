package jalc

import (
	"time"

	"github.com/MnacsM/papnt/internal/record"
)

// preferredLangs is the locale-preference order applied to every
// language-tagged field: Japanese wins, English is the fallback.
var preferredLangs = []string{"ja", "en"}

// articleTypes maps JaLC article types to the registry publication-type
// vocabulary. Unmapped types fall back to the generic "article".
var articleTypes = map[string]string{
	"pub":              "journal-article",
	"dataset":          "dataset",
	"book":             "book",
	"conference-paper": "proceedings-article",
	"poster":           "posted-content",
}

// preferLocale returns the first element whose language tag matches each
// preferred language in turn, so an earlier language anywhere in the list
// beats a later language at the front.
func preferLocale[T any](items []T, lang func(T) string) (T, bool) {
	for _, l := range preferredLangs {
		for _, item := range items {
			if lang(item) == l {
				return item, true
			}
		}
	}
	var zero T
	return zero, false
}

// MapResponse builds a canonical record from JaLC metadata.
func MapResponse(doi string, meta Metadata) record.Record {
	rec := record.Record{
		DOI:       doi,
		Type:      articleType(meta.ArticleType),
		Publisher: publisherName(meta.PublisherList),
		Volume:    meta.Volume,
		Issue:     meta.Issue,
		Page:      pageRange(meta.FirstPage, meta.LastPage),
		Source:    record.SourceJaLC,
	}

	if title, ok := preferLocale(meta.TitleList, func(t Title) string { return t.Lang }); ok {
		rec.Title = []string{title.Title}
	}

	for _, creator := range meta.CreatorList {
		name, ok := preferLocale(creator.Names, func(n CreatorName) string { return n.Lang })
		if !ok {
			continue
		}
		// JaLC's first_name field holds the family name and last_name the
		// given name; the upstream semantics are kept as-is.
		rec.Authors = append(rec.Authors, record.Person{
			Family: name.FirstName,
			Given:  name.LastName,
		})
	}

	if meta.Date != "" {
		if t, err := time.Parse("2006-01-02", meta.Date); err == nil {
			rec.Published = &record.Date{
				Year:  t.Year(),
				Month: int(t.Month()),
				Day:   t.Day(),
			}
		}
	}

	var full []JournalTitle
	for _, jt := range meta.JournalTitleList {
		if jt.Type == "full" {
			full = append(full, jt)
		}
	}
	if venue, ok := preferLocale(full, func(jt JournalTitle) string { return jt.Lang }); ok {
		rec.ContainerTitle = []string{venue.Name}
	}

	return rec
}

func articleType(raw string) string {
	if mapped, ok := articleTypes[raw]; ok {
		return mapped
	}
	return "article"
}

func publisherName(publishers []Publisher) string {
	p, ok := preferLocale(publishers, func(p Publisher) string { return p.Lang })
	if !ok {
		return ""
	}
	return p.Name
}

// pageRange joins both endpoints with an en-dash, or returns the first
// page alone when the range is open-ended.
func pageRange(first, last string) string {
	switch {
	case first != "" && last != "":
		return first + "–" + last
	case first != "":
		return first
	default:
		return ""
	}
}
