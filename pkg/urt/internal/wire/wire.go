package wire

import (
	"fmt"

	"github.com/ib-77/urt/pkg/urt"
)

// Document is a tagged document whose payload has not been decoded yet.
type Document struct {
	Tag    string
	unit   bool
	decode func(v any) error
}

// Encode returns the value to marshal for a variant. A unit variant is
// encoded as its tag.
func Encode(tag string, payload any, unit bool) any {
	if unit {
		return tag
	}
	return map[string]any{tag: payload}
}

// IsUnit reports whether the document carried no payload.
func (d Document) IsUnit() bool {
	return d.unit
}

// Decode decodes the payload into v.
func (d Document) Decode(v any) error {
	if d.decode == nil {
		return fmt.Errorf("%w: variant %q carries no payload", urt.ErrMalformedDocument, d.Tag)
	}
	return d.decode(v)
}

// ExpectUnit fails when a unit variant was given a non-null payload.
func (d Document) ExpectUnit() error {
	if d.unit {
		return nil
	}
	return fmt.Errorf("%w: variant %q does not take a payload", urt.ErrMalformedDocument, d.Tag)
}

// UnknownVariant builds the cause for a tag the target union does not have.
func UnknownVariant(tag string) error {
	return fmt.Errorf("%w %q", urt.ErrUnknownVariant, tag)
}
