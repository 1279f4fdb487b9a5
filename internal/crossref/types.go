// Package crossref fetches work metadata from the CrossRef REST API and
// maps it into canonical records.
package crossref

import "github.com/MnacsM/papnt/internal/record"

// Work is the subset of a CrossRef work record this tool consumes. JSON
// tags follow the registry vocabulary, which is copied through verbatim.
type Work struct {
	DOI            string    `json:"DOI"`
	Type           string    `json:"type"`
	Title          []string  `json:"title"`
	Author         []Name    `json:"author"`
	Editor         []Name    `json:"editor"`
	Published      DateParts `json:"published"`
	ContainerTitle []string  `json:"container-title"`
	Publisher      string    `json:"publisher"`
	Volume         string    `json:"volume"`
	Issue          string    `json:"issue"`
	Page           string    `json:"page"`
	EditionNumber  string    `json:"edition-number"`
	Subject        []string  `json:"subject"`
}

// Name is a CrossRef contributor. Organizations carry only Name; persons
// carry the Given/Family pair.
type Name struct {
	Given  string `json:"given"`
	Family string `json:"family"`
	Name   string `json:"name"`
}

// DateParts is CrossRef's nested date representation: an outer list whose
// first element is [year, month, day] with month and day optional.
type DateParts struct {
	DateParts [][]int `json:"date-parts"`
}

// Date flattens the first date-parts entry, or returns nil when absent.
func (dp DateParts) Date() *record.Date {
	if len(dp.DateParts) == 0 || len(dp.DateParts[0]) == 0 {
		return nil
	}
	parts := dp.DateParts[0]
	d := &record.Date{Year: parts[0]}
	if len(parts) > 1 {
		d.Month = parts[1]
	}
	if len(parts) > 2 {
		d.Day = parts[2]
	}
	return d
}
