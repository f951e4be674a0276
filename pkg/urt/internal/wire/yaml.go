package wire

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ib-77/urt/pkg/urt"
)

const yamlNullTag = "!!null"

// FromYAML splits a YAML node into its tag and payload.
func FromYAML(node *yaml.Node) (Document, error) {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}

	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == yamlNullTag {
			break
		}
		return Document{Tag: node.Value, unit: true}, nil
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return Document{}, fmt.Errorf("%w: expected exactly one variant key, got %d",
				urt.ErrMalformedDocument, len(node.Content)/2)
		}
		key, payload := node.Content[0], node.Content[1]
		return Document{
			Tag:    key.Value,
			unit:   payload.Kind == yaml.ScalarNode && payload.Tag == yamlNullTag,
			decode: payload.Decode,
		}, nil
	}

	return Document{}, fmt.Errorf("%w: unexpected YAML node at line %d", urt.ErrMalformedDocument, node.Line)
}
