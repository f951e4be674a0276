package wire

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/ib-77/urt/pkg/urt"
)

var jsonNull = []byte("null")

// IsNull reports whether data is the JSON literal null. Decoders leave the
// target untouched in that case, as encoding/json does and as yaml.v3 does
// for a null node.
func IsNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), jsonNull)
}

// FromJSON splits a JSON document into its tag and payload.
func FromJSON(data []byte) (Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var tag string
		if err := json.Unmarshal(trimmed, &tag); err != nil {
			return Document{}, fmt.Errorf("%w: %v", urt.ErrMalformedDocument, err)
		}
		return Document{Tag: tag, unit: true}, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return Document{}, fmt.Errorf("%w: %v", urt.ErrMalformedDocument, err)
	}
	if len(fields) != 1 {
		return Document{}, fmt.Errorf("%w: expected exactly one variant key, got %d", urt.ErrMalformedDocument, len(fields))
	}

	var doc Document
	for tag, raw := range fields {
		doc = Document{
			Tag:  tag,
			unit: bytes.Equal(bytes.TrimSpace(raw), jsonNull),
			decode: func(v any) error {
				return json.Unmarshal(raw, v)
			},
		}
	}
	return doc, nil
}

// MarshalJSON encodes the value built by Encode.
func MarshalJSON(encoded any) ([]byte, error) {
	return json.Marshal(encoded)
}
