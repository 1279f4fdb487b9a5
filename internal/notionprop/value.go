// Package notionprop serializes canonical records into Notion's typed
// property schema.
package notionprop

import (
	"strconv"
	"strings"

	"github.com/MnacsM/papnt/internal/record"
)

// Kind is a Notion property value type.
type Kind string

const (
	KindTitle       Kind = "title"
	KindSelect      Kind = "select"
	KindMultiSelect Kind = "multi_select"
	KindRichText    Kind = "rich_text"
	KindNumber      Kind = "number"
	KindDate        Kind = "date"
)

// Value is one typed Notion property value, shaped for the Notion API.
// Exactly one field is populated, matching the value's kind.
type Value struct {
	Title       []RichText     `json:"title,omitempty"`
	Select      *SelectOption  `json:"select,omitempty"`
	MultiSelect []SelectOption `json:"multi_select,omitempty"`
	RichText    []RichText     `json:"rich_text,omitempty"`
	Number      *float64       `json:"number,omitempty"`
	Date        *DateValue     `json:"date,omitempty"`
	Checkbox    *bool          `json:"checkbox,omitempty"`
}

// RichText is one Notion rich-text fragment.
type RichText struct {
	Text Text `json:"text"`
}

// Text is the content of a rich-text fragment.
type Text struct {
	Content string `json:"content"`
}

// SelectOption is one Notion select or multi-select option.
type SelectOption struct {
	Name string `json:"name"`
}

// DateValue is a Notion date property value.
type DateValue struct {
	Start string `json:"start"`
}

// NewValue wraps content as a property value of the given kind. Nil
// content yields a nil value (the property is omitted). Content whose type
// does not match the kind is rejected with InvalidPropertyTypeError:
// title, select and rich_text take a string, multi_select a []string,
// number an int or float64, and date a record.Date.
func NewValue(content any, kind Kind) (*Value, error) {
	if content == nil {
		return nil, nil
	}

	switch kind {
	case KindTitle:
		s, ok := content.(string)
		if !ok {
			return nil, typeError(kind, content)
		}
		return &Value{Title: []RichText{{Text: Text{Content: s}}}}, nil

	case KindSelect:
		s, ok := content.(string)
		if !ok {
			return nil, typeError(kind, content)
		}
		return &Value{Select: &SelectOption{Name: scrubCommas(s)}}, nil

	case KindMultiSelect:
		items, ok := content.([]string)
		if !ok {
			return nil, typeError(kind, content)
		}
		options := make([]SelectOption, len(items))
		for i, item := range items {
			options[i] = SelectOption{Name: scrubCommas(item)}
		}
		return &Value{MultiSelect: options}, nil

	case KindRichText:
		s, ok := content.(string)
		if !ok {
			return nil, typeError(kind, content)
		}
		return &Value{RichText: []RichText{{Text: Text{Content: s}}}}, nil

	case KindNumber:
		var n float64
		switch v := content.(type) {
		case int:
			n = float64(v)
		case float64:
			n = v
		default:
			return nil, typeError(kind, content)
		}
		return &Value{Number: &n}, nil

	case KindDate:
		d, ok := content.(record.Date)
		if !ok {
			return nil, typeError(kind, content)
		}
		parts := make([]string, 0, 3)
		for _, p := range d.Parts() {
			parts = append(parts, strconv.Itoa(p))
		}
		// Only the parts present are joined; no zero-padding is invented.
		return &Value{Date: &DateValue{Start: strings.Join(parts, "-")}}, nil

	default:
		return nil, &InvalidPropertyTypeError{Kind: kind, Got: "unsupported kind"}
	}
}

// NewCheckbox wraps a boolean as a checkbox property value.
func NewCheckbox(checked bool) *Value {
	return &Value{Checkbox: &checked}
}

// scrubCommas replaces commas with underscores: Notion treats a comma in a
// categorical value as a separator and would split one value into several.
func scrubCommas(s string) string {
	return strings.ReplaceAll(s, ",", "_")
}
