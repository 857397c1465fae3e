package source

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"littleeye/node"
)

// DecodeYAML decodes the first YAML document in data.
func DecodeYAML(data []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if doc.Kind == 0 {
		return nil, nil
	}

	c := &yamlConverter{seen: make(map[*yaml.Node]any)}
	return c.convert(&doc)
}

// yamlConverter turns a yaml.Node tree into plain values, sharing the
// converted value between an anchor and its aliases.
type yamlConverter struct {
	seen map[*yaml.Node]any
}

func (c *yamlConverter) convert(n *yaml.Node) (any, error) {
	if v, ok := c.seen[n]; ok {
		return v, nil
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return c.convert(n.Content[0])

	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, errors.New("alias without anchor")
		}
		return c.convert(n.Alias)

	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return v, nil

	case yaml.SequenceNode:
		items := make([]any, len(n.Content))
		c.seen[n] = items
		for i, child := range n.Content {
			v, err := c.convert(child)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return items, nil

	case yaml.MappingNode:
		if len(n.Content)%2 != 0 {
			return nil, fmt.Errorf("line %d: mapping with a dangling key", n.Line)
		}

		m := node.NewOrderedMap(len(n.Content) / 2)
		c.seen[n] = m
		for i := 0; i < len(n.Content); i += 2 {
			k, err := c.convert(n.Content[i])
			if err != nil {
				return nil, err
			}
			v, err := c.convert(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Set(k, v)
		}
		return m, nil

	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node kind %d", n.Line, n.Kind)
	}
}
