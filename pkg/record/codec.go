package record

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// DecodeJSON parses a JSON object and materializes a T from it.
// Numbers are kept as number literals so integer fields never pass through
// float64.
func DecodeJSON[T any, PT Pointer[T]](data []byte) (T, error) {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		var zero T
		return zero, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return Materialize[T, PT](raw)
}

// EncodeJSON serializes r with keys in field declaration order.
// JSON strings are UTF-8, so a string value or map key holding invalid UTF-8
// is an error rather than being silently replaced with U+FFFD.
func EncodeJSON(r Record) ([]byte, error) {
	m := Flatten(r)
	if path, ok := invalidUTF8(m); ok {
		return nil, fmt.Errorf("failed to encode JSON: string at %s is not valid UTF-8", path)
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return data, nil
}

// invalidUTF8 returns the path of the first string in v that is not valid
// UTF-8.
func invalidUTF8(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return "", !utf8.ValidString(x)
	case *Mapping:
		for p := x.Oldest(); p != nil; p = p.Next() {
			if !utf8.ValidString(p.Key) {
				return keySegment(p.Key), true
			}
			if path, ok := invalidUTF8(p.Value); ok {
				return joinPath(p.Key, path), true
			}
		}
	case []any:
		for i, e := range x {
			if path, ok := invalidUTF8(e); ok {
				return joinPath(indexSegment(i), path), true
			}
		}
	}
	return "", false
}

// DecodeYAML parses a YAML mapping and materializes a T from it.
func DecodeYAML[T any, PT Pointer[T]](data []byte) (T, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		var zero T
		return zero, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return Materialize[T, PT](raw)
}

// EncodeYAML serializes r with keys in field declaration order.
func EncodeYAML(r Record) ([]byte, error) {
	node, err := yamlNode(Flatten(r))
	if err != nil {
		return nil, err
	}
	data, err := yaml.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	return data, nil
}

// yamlNode converts flattened output to a yaml.v3 node tree, keeping Mapping
// key order at every depth.
func yamlNode(v any) (*yaml.Node, error) {
	switch x := v.(type) {
	case *Mapping:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for p := x.Oldest(); p != nil; p = p.Next() {
			val, err := yamlNode(p.Value)
			if err != nil {
				return nil, err
			}
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Key}
			n.Content = append(n.Content, key, val)
		}
		return n, nil
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range x {
			val, err := yamlNode(e)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, val)
		}
		return n, nil
	default:
		n := &yaml.Node{}
		if err := n.Encode(x); err != nil {
			return nil, fmt.Errorf("failed to encode YAML value %v: %w", x, err)
		}
		return n, nil
	}
}
