package crossref

import "github.com/MnacsM/papnt/internal/record"

// MapWork copies a CrossRef work into a canonical record. The registry
// vocabulary is authoritative, so nothing is normalized here beyond field
// renaming.
func MapWork(w Work) record.Record {
	return record.Record{
		DOI:            w.DOI,
		Type:           w.Type,
		Title:          w.Title,
		Authors:        mapNames(w.Author),
		Editors:        mapNames(w.Editor),
		Published:      w.Published.Date(),
		ContainerTitle: w.ContainerTitle,
		Publisher:      w.Publisher,
		Volume:         w.Volume,
		Issue:          w.Issue,
		Page:           w.Page,
		Edition:        w.EditionNumber,
		Subjects:       w.Subject,
		Source:         record.SourceCrossref,
	}
}

func mapNames(names []Name) []record.Person {
	if len(names) == 0 {
		return nil
	}
	persons := make([]record.Person, len(names))
	for i, n := range names {
		persons[i] = record.Person{
			Given:  n.Given,
			Family: n.Family,
			Name:   n.Name,
		}
	}
	return persons
}
