//go:build !urt_noserde

package erroroption

import (
	"gopkg.in/yaml.v3"

	"github.com/ib-77/urt/pkg/urt"
	"github.com/ib-77/urt/pkg/urt/internal/wire"
)

const unionName = "ErrorOption"

func (o ErrorOption[T, E]) encoded() any {
	switch o.variant {
	case VariantValue:
		return wire.Encode(VariantValue.String(), o.value, false)
	case VariantError:
		return wire.Encode(VariantError.String(), o.err, false)
	}
	return wire.Encode(VariantEmpty.String(), nil, true)
}

// MarshalJSON encodes o as {"Value": payload}, {"Error": payload} or "Empty".
// The error payload is encoded as is, so E should be a serializable type
// rather than a bare error interface.
func (o ErrorOption[T, E]) MarshalJSON() ([]byte, error) {
	return wire.MarshalJSON(o.encoded())
}

func (o *ErrorOption[T, E]) UnmarshalJSON(data []byte) error {
	if wire.IsNull(data) {
		return nil
	}
	doc, err := wire.FromJSON(data)
	if err != nil {
		return urt.DecodeError(unionName, err)
	}
	return o.decode(doc)
}

func (o ErrorOption[T, E]) MarshalYAML() (interface{}, error) {
	return o.encoded(), nil
}

func (o *ErrorOption[T, E]) UnmarshalYAML(node *yaml.Node) error {
	doc, err := wire.FromYAML(node)
	if err != nil {
		return urt.DecodeError(unionName, err)
	}
	return o.decode(doc)
}

func (o *ErrorOption[T, E]) decode(doc wire.Document) error {
	switch doc.Tag {
	case VariantValue.String():
		var v T
		if err := doc.Decode(&v); err != nil {
			return urt.DecodeError(unionName, err)
		}
		*o = Value[T, E](v)
	case VariantError.String():
		var e E
		if err := doc.Decode(&e); err != nil {
			return urt.DecodeError(unionName, err)
		}
		*o = Error[T](e)
	case VariantEmpty.String():
		if err := doc.ExpectUnit(); err != nil {
			return urt.DecodeError(unionName, err)
		}
		*o = Empty[T, E]()
	default:
		return urt.DecodeError(unionName, wire.UnknownVariant(doc.Tag))
	}
	return nil
}
