// Package notion provides a minimal client for the pieces of the Notion
// API this tool touches: querying a database, creating and updating pages,
// and appending child blocks.
package notion

import (
	"strconv"
	"strings"
)

// Page is one page returned from a database query.
type Page struct {
	ID         string                  `json:"id"`
	Properties map[string]PageProperty `json:"properties"`
}

// PageProperty is a property value as read back from the API. Only the
// field matching Type is populated.
type PageProperty struct {
	Type        string         `json:"type"`
	Title       []richTextItem `json:"title"`
	RichText    []richTextItem `json:"rich_text"`
	Select      *selectOption  `json:"select"`
	MultiSelect []selectOption `json:"multi_select"`
	Number      *float64       `json:"number"`
	Date        *dateValue     `json:"date"`
	Checkbox    *bool          `json:"checkbox"`
	Files       []fileRef      `json:"files"`
}

type richTextItem struct {
	PlainText string `json:"plain_text"`
}

type selectOption struct {
	Name string `json:"name"`
}

type dateValue struct {
	Start string `json:"start"`
}

type fileRef struct {
	File struct {
		URL string `json:"url"`
	} `json:"file"`
}

// Plain renders a scalar property as plain text. Multi-select values are
// better read through Names.
func (p PageProperty) Plain() string {
	switch p.Type {
	case "title":
		return joinPlain(p.Title)
	case "rich_text":
		return joinPlain(p.RichText)
	case "select":
		if p.Select == nil {
			return ""
		}
		return p.Select.Name
	case "number":
		if p.Number == nil {
			return ""
		}
		return strconv.FormatFloat(*p.Number, 'f', -1, 64)
	case "date":
		if p.Date == nil {
			return ""
		}
		return p.Date.Start
	default:
		return ""
	}
}

// Names returns the option names of a multi-select property.
func (p PageProperty) Names() []string {
	if len(p.MultiSelect) == 0 {
		return nil
	}
	names := make([]string, len(p.MultiSelect))
	for i, opt := range p.MultiSelect {
		names[i] = opt.Name
	}
	return names
}

// FileURLs returns the download URLs of a files property.
func (p PageProperty) FileURLs() []string {
	var urls []string
	for _, f := range p.Files {
		if f.File.URL != "" {
			urls = append(urls, f.File.URL)
		}
	}
	return urls
}

func joinPlain(items []richTextItem) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(item.PlainText)
	}
	return b.String()
}
