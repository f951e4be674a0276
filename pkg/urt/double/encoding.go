//go:build !urt_noserde

package double

import (
	"gopkg.in/yaml.v3"

	"github.com/ib-77/urt/pkg/urt"
	"github.com/ib-77/urt/pkg/urt/internal/wire"
)

const unionName = "Double"

func (d Double[T, U]) encoded() any {
	if d.variant == VariantFirst {
		return wire.Encode(VariantFirst.String(), d.first, false)
	}
	return wire.Encode(VariantSecond.String(), d.second, false)
}

// MarshalJSON encodes d as {"First": payload} or {"Second": payload}.
func (d Double[T, U]) MarshalJSON() ([]byte, error) {
	return wire.MarshalJSON(d.encoded())
}

func (d *Double[T, U]) UnmarshalJSON(data []byte) error {
	if wire.IsNull(data) {
		return nil
	}
	doc, err := wire.FromJSON(data)
	if err != nil {
		return urt.DecodeError(unionName, err)
	}
	return d.decode(doc)
}

// MarshalYAML encodes d as a single-key mapping, First: payload or Second: payload.
func (d Double[T, U]) MarshalYAML() (interface{}, error) {
	return d.encoded(), nil
}

func (d *Double[T, U]) UnmarshalYAML(node *yaml.Node) error {
	doc, err := wire.FromYAML(node)
	if err != nil {
		return urt.DecodeError(unionName, err)
	}
	return d.decode(doc)
}

func (d *Double[T, U]) decode(doc wire.Document) error {
	switch doc.Tag {
	case VariantFirst.String():
		var v T
		if err := doc.Decode(&v); err != nil {
			return urt.DecodeError(unionName, err)
		}
		*d = First[T, U](v)
	case VariantSecond.String():
		var v U
		if err := doc.Decode(&v); err != nil {
			return urt.DecodeError(unionName, err)
		}
		*d = Second[T](v)
	default:
		return urt.DecodeError(unionName, wire.UnknownVariant(doc.Tag))
	}
	return nil
}
