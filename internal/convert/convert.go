package convert

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	perrors "github.com/jmgilman/go/errors"
	"gopkg.in/yaml.v3"

	"github.com/ib-77/urt/pkg/urt/double"
	"github.com/ib-77/urt/pkg/urt/doubleoption"
	"github.com/ib-77/urt/pkg/urt/erroroption"
)

type Kind string

const (
	KindDouble       Kind = "double"
	KindDoubleOption Kind = "doubleoption"
	KindErrorOption  Kind = "erroroption"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindDouble, KindDoubleOption, KindErrorOption:
		return k, nil
	}
	return "", perrors.WithContext(
		perrors.Newf(perrors.CodeInvalidConfig, "unknown union kind %q", s),
		"expected", []Kind{KindDouble, KindDoubleOption, KindErrorOption})
}

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatYAML:
		return f, nil
	}
	return "", perrors.WithContext(
		perrors.Newf(perrors.CodeInvalidConfig, "unknown format %q", s),
		"expected", []Format{FormatJSON, FormatYAML})
}

// Document is a decoded union whose payloads are held as untyped values.
type Document struct {
	Kind    Kind
	Variant string
	Union   fmt.Stringer
}

func (d Document) String() string {
	return d.Union.String()
}

// Decode parses data as a union of the given kind.
func Decode(kind Kind, format Format, data []byte) (Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Document{}, perrors.New(perrors.CodeInvalidInput, "empty document")
	}

	switch kind {
	case KindDouble:
		var u double.Double[any, any]
		if err := unmarshal(format, data, &u); err != nil {
			return Document{}, err
		}
		return Document{Kind: kind, Variant: u.Variant().String(), Union: u}, nil
	case KindDoubleOption:
		var u doubleoption.DoubleOption[any, any]
		if err := unmarshal(format, data, &u); err != nil {
			return Document{}, err
		}
		return Document{Kind: kind, Variant: u.Variant().String(), Union: u}, nil
	case KindErrorOption:
		var u erroroption.ErrorOption[any, any]
		if err := unmarshal(format, data, &u); err != nil {
			return Document{}, err
		}
		return Document{Kind: kind, Variant: u.Variant().String(), Union: u}, nil
	}
	return Document{}, perrors.Newf(perrors.CodeInvalidConfig, "unknown union kind %q", kind)
}

// Encode renders doc in the given format.
func Encode(doc Document, format Format) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = json.Marshal(doc.Union)
	case FormatYAML:
		data, err = yaml.Marshal(doc.Union)
	default:
		return nil, perrors.Newf(perrors.CodeInvalidConfig, "unknown format %q", format)
	}
	if err != nil {
		return nil, perrors.WithContext(
			perrors.Wrap(err, perrors.CodeInternal, "failed to encode document"),
			"kind", doc.Kind)
	}
	return data, nil
}

// Convert decodes data in one format and re-encodes it in another.
func Convert(kind Kind, from, to Format, data []byte) ([]byte, error) {
	doc, err := Decode(kind, from, data)
	if err != nil {
		return nil, err
	}
	return Encode(doc, to)
}

func unmarshal(format Format, data []byte, out any) error {
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, out)
	case FormatYAML:
		err = yaml.Unmarshal(data, out)
	default:
		return perrors.Newf(perrors.CodeInvalidConfig, "unknown format %q", format)
	}

	if err == nil {
		return nil
	}
	// Syntax errors never reach the union decoder and carry no code yet.
	if perrors.GetCode(err) == perrors.CodeUnknown {
		return perrors.WithContext(
			perrors.Wrap(err, perrors.CodeInvalidInput, "failed to parse document"),
			"format", format)
	}
	return err
}
