package domain

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Property is a single key/value entry of a Properties map.
type Property struct {
	Key   string
	Value string
}

// Properties is an ordered string map with unique keys.
// Iteration follows insertion order; setting an existing key keeps its position.
// The zero value is an empty map ready to use. Copies are independent: Set never
// writes to storage another copy can see.
type Properties struct {
	entries []Property
	index   map[string]int
}

// NewProperties builds a Properties from alternating key, value pairs.
// It panics on an odd number of arguments.
func NewProperties(kv ...string) Properties {
	if len(kv)%2 != 0 {
		panic("domain.NewProperties: odd number of arguments")
	}
	var p Properties
	for i := 0; i < len(kv); i += 2 {
		p.put(kv[i], kv[i+1])
	}
	return p
}

// Set adds or replaces the value stored for key.
func (p *Properties) Set(key, value string) {
	entries := make([]Property, len(p.entries), len(p.entries)+1)
	copy(entries, p.entries)
	index := make(map[string]int, len(p.index)+1)
	for k, i := range p.index {
		index[k] = i
	}
	p.entries, p.index = entries, index
	p.put(key, value)
}

// put mutates p in place; only for values no copy has seen yet.
func (p *Properties) put(key, value string) {
	if p.index == nil {
		p.index = make(map[string]int)
	}
	if i, ok := p.index[key]; ok {
		p.entries[i].Value = value
		return
	}
	p.index[key] = len(p.entries)
	p.entries = append(p.entries, Property{Key: key, Value: value})
}

// Get returns the value stored for key.
func (p Properties) Get(key string) (string, bool) {
	i, ok := p.index[key]
	if !ok {
		return "", false
	}
	return p.entries[i].Value, true
}

// Len returns the number of entries.
func (p Properties) Len() int {
	return len(p.entries)
}

// Entries returns a copy of the entries in insertion order.
func (p Properties) Entries() []Property {
	out := make([]Property, len(p.entries))
	copy(out, p.entries)
	return out
}

// Keys returns the keys in insertion order.
func (p Properties) Keys() []string {
	keys := make([]string, len(p.entries))
	for i, e := range p.entries {
		keys[i] = e.Key
	}
	return keys
}

// UnmarshalYAML decodes a mapping node keeping the document order of its keys.
// Scalar values are kept as written (numbers and booleans are not reformatted); null becomes "".
func (p *Properties) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*p = Properties{}
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of strings, got %s", node.Line, kindName(node.Kind))
	}

	var out Properties
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if v.Kind == yaml.AliasNode {
			v = v.Alias
		}
		if k.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: property keys must be scalars", k.Line)
		}
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: property %q must have a scalar value, got %s", v.Line, k.Value, kindName(v.Kind))
		}
		if _, dup := out.Get(k.Value); dup {
			return fmt.Errorf("line %d: duplicate property %q", k.Line, k.Value)
		}
		value := v.Value
		if v.Tag == "!!null" {
			value = ""
		}
		out.put(k.Value, value)
	}
	*p = out
	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
