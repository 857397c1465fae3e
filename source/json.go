package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"littleeye/node"
)

// maxJSONDepth bounds nesting the way encoding/json does for Unmarshal.
const maxJSONDepth = 10000

// DecodeJSON decodes a single JSON document. Objects become *node.OrderedMap
// in document order; a repeated key keeps its first position and its last
// value. Integral numbers become int (int64 where int is narrower), other
// numbers float64.
func DecodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	d := &jsonDecoder{dec: dec}
	v, err := d.value()
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("failed to parse JSON: trailing data after document")
	}

	return v, nil
}

// jsonDecoder builds values from the token stream so that object keys keep
// the order they were written in.
type jsonDecoder struct {
	dec   *json.Decoder
	depth int
}

func (d *jsonDecoder) value() (any, error) {
	tok, err := d.dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		d.depth++
		defer func() { d.depth-- }()
		if d.depth > maxJSONDepth {
			return nil, fmt.Errorf("exceeded max depth of %d", maxJSONDepth)
		}

		switch t {
		case '[':
			return d.array()
		case '{':
			return d.object()
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case json.Number:
		return normalizeNumber(t), nil
	default:
		// string, bool or nil
		return t, nil
	}
}

func (d *jsonDecoder) array() (any, error) {
	items := make([]any, 0)
	for d.dec.More() {
		v, err := d.value()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}

	if _, err := d.dec.Token(); err != nil {
		return nil, err
	}

	return items, nil
}

func (d *jsonDecoder) object() (any, error) {
	var keys []string
	values := make(map[string]any)
	for d.dec.More() {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key %v is not a string", tok)
		}

		v, err := d.value()
		if err != nil {
			return nil, err
		}
		if _, dup := values[key]; !dup {
			keys = append(keys, key)
		}
		values[key] = v
	}

	if _, err := d.dec.Token(); err != nil {
		return nil, err
	}

	m := node.NewOrderedMap(len(keys))
	for _, k := range keys {
		m.Set(k, values[k])
	}

	return m, nil
}

func normalizeNumber(n json.Number) any {
	if i, err := n.Int64(); err == nil {
		if i == int64(int(i)) {
			return int(i)
		}
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}

	return n.String()
}
