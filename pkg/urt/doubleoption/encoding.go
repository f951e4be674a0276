//go:build !urt_noserde

package doubleoption

import (
	"gopkg.in/yaml.v3"

	"github.com/ib-77/urt/pkg/urt"
	"github.com/ib-77/urt/pkg/urt/internal/wire"
)

const unionName = "DoubleOption"

func (o DoubleOption[T, U]) encoded() any {
	switch o.variant {
	case VariantFirst:
		return wire.Encode(VariantFirst.String(), o.first, false)
	case VariantSecond:
		return wire.Encode(VariantSecond.String(), o.second, false)
	}
	return wire.Encode(VariantEmpty.String(), nil, true)
}

// MarshalJSON encodes o as {"First": payload}, {"Second": payload} or "Empty".
func (o DoubleOption[T, U]) MarshalJSON() ([]byte, error) {
	return wire.MarshalJSON(o.encoded())
}

func (o *DoubleOption[T, U]) UnmarshalJSON(data []byte) error {
	if wire.IsNull(data) {
		return nil
	}
	doc, err := wire.FromJSON(data)
	if err != nil {
		return urt.DecodeError(unionName, err)
	}
	return o.decode(doc)
}

func (o DoubleOption[T, U]) MarshalYAML() (interface{}, error) {
	return o.encoded(), nil
}

func (o *DoubleOption[T, U]) UnmarshalYAML(node *yaml.Node) error {
	doc, err := wire.FromYAML(node)
	if err != nil {
		return urt.DecodeError(unionName, err)
	}
	return o.decode(doc)
}

func (o *DoubleOption[T, U]) decode(doc wire.Document) error {
	switch doc.Tag {
	case VariantFirst.String():
		var v T
		if err := doc.Decode(&v); err != nil {
			return urt.DecodeError(unionName, err)
		}
		*o = First[T, U](v)
	case VariantSecond.String():
		var v U
		if err := doc.Decode(&v); err != nil {
			return urt.DecodeError(unionName, err)
		}
		*o = Second[T](v)
	case VariantEmpty.String():
		if err := doc.ExpectUnit(); err != nil {
			return urt.DecodeError(unionName, err)
		}
		*o = Empty[T, U]()
	default:
		return urt.DecodeError(unionName, wire.UnknownVariant(doc.Tag))
	}
	return nil
}
