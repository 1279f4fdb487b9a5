package notionprop

import "fmt"

// MissingAuthorError indicates an author entry with no resolvable name:
// neither a given/family pair, a bare family name, nor a display name. The
// record cannot be serialized.
type MissingAuthorError struct {
	Index int // position in the record's author list
}

func (e *MissingAuthorError) Error() string {
	return fmt.Sprintf("author %d: no resolvable name", e.Index+1)
}

// InvalidPropertyTypeError indicates a value whose shape does not match the
// destination property type. This is a programming-contract violation by an
// adapter, not a data problem.
type InvalidPropertyTypeError struct {
	Field string // destination field, set where the field is known
	Kind  Kind
	Got   string
}

func (e *InvalidPropertyTypeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("property %q: %s value required, got %s", e.Field, e.Kind, e.Got)
	}
	return fmt.Sprintf("%s value required, got %s", e.Kind, e.Got)
}

func typeError(kind Kind, content any) error {
	return &InvalidPropertyTypeError{Kind: kind, Got: fmt.Sprintf("%T", content)}
}
