// Package theme holds the host theme's colour tree and flattens it into
// named colour entries.
package theme

import (
	"fmt"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Tree is an ordered colour tree. A node is either a leaf holding a raw
// colour string or a branch holding ordered named children.
type Tree struct {
	value    string
	leaf     bool
	children []Child
}

// Child is a named subtree.
type Child struct {
	Key  string
	Tree *Tree
}

// Leaf creates a leaf node.
func Leaf(value string) *Tree {
	return &Tree{value: value, leaf: true}
}

// Branch creates a branch node with the given children in order.
func Branch(children ...Child) *Tree {
	return &Tree{children: children}
}

// IsLeaf reports whether the node holds a colour value.
func (t *Tree) IsLeaf() bool {
	return t != nil && t.leaf
}

// Value returns the raw colour of a leaf.
func (t *Tree) Value() string {
	if t == nil {
		return ""
	}
	return t.value
}

// Children returns the ordered children of a branch.
func (t *Tree) Children() []Child {
	if t == nil {
		return nil
	}
	return t.children
}

// Lookup returns the child stored under key.
func (t *Tree) Lookup(key string) (*Tree, bool) {
	for _, c := range t.Children() {
		if c.Key == key {
			return c.Tree, true
		}
	}
	return nil, false
}

// FromMap builds a tree from nested maps. Keys are sorted so the result
// does not depend on map iteration order. Nested values may be
// map[string]any, map[string]string, []any or scalars.
func FromMap(m map[string]any) *Tree {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := Branch()
	for _, k := range keys {
		t.children = append(t.children, Child{Key: k, Tree: fromValue(m[k])})
	}
	return t
}

func fromValue(v any) *Tree {
	switch val := v.(type) {
	case *Tree:
		return val
	case map[string]any:
		return FromMap(val)
	case map[string]string:
		m := make(map[string]any, len(val))
		for k, s := range val {
			m[k] = s
		}
		return FromMap(m)
	case []any:
		t := Branch()
		for i, item := range val {
			t.children = append(t.children, Child{Key: strconv.Itoa(i), Tree: fromValue(item)})
		}
		return t
	case string:
		return Leaf(val)
	case nil:
		return Leaf("")
	default:
		return Leaf(fmt.Sprint(val))
	}
}

// FromNode builds a tree from a decoded YAML (or JSON) node, keeping the
// document's key order.
func FromNode(n *yaml.Node) (*Tree, error) {
	if n == nil {
		return Branch(), nil
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Branch(), nil
		}
		return FromNode(n.Content[0])
	case yaml.AliasNode:
		return FromNode(n.Alias)
	case yaml.MappingNode:
		return fromMapping(n)
	case yaml.SequenceNode:
		t := Branch()
		for i, item := range n.Content {
			child, err := FromNode(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			t.children = append(t.children, Child{Key: strconv.Itoa(i), Tree: child})
		}
		return t, nil
	case yaml.ScalarNode:
		return Leaf(n.Value), nil
	default:
		return nil, fmt.Errorf("line %d: unsupported node kind %v", n.Line, n.Kind)
	}
}

// fromMapping builds a branch from a mapping node. Keys set explicitly
// in the mapping override keys pulled in through "<<", and among merge
// sources the first one listed wins.
func fromMapping(n *yaml.Node) (*Tree, error) {
	explicit := make(map[string]bool)
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode := n.Content[i]
		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: colour keys must be scalars", keyNode.Line)
		}
		if keyNode.Tag != "!!merge" {
			explicit[keyNode.Value] = true
		}
	}

	t := Branch()
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valNode := n.Content[i], n.Content[i+1]
		if keyNode.Tag == "!!merge" {
			sources := []*yaml.Node{valNode}
			if valNode.Kind == yaml.SequenceNode {
				sources = valNode.Content
			}
			for _, src := range sources {
				merged, err := FromNode(src)
				if err != nil {
					return nil, err
				}
				for _, c := range merged.children {
					if explicit[c.Key] || t.index(c.Key) >= 0 {
						continue
					}
					t.children = append(t.children, c)
				}
			}
			continue
		}
		child, err := FromNode(valNode)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", keyNode.Value, err)
		}
		t.set(keyNode.Value, child)
	}
	return t, nil
}

// index returns the position of key among the children, or -1.
func (t *Tree) index(key string) int {
	for i, c := range t.children {
		if c.Key == key {
			return i
		}
	}
	return -1
}

// set replaces the child stored under key, or appends it.
func (t *Tree) set(key string, child *Tree) {
	if i := t.index(key); i >= 0 {
		t.children[i].Tree = child
		return
	}
	t.children = append(t.children, Child{Key: key, Tree: child})
}

// Decode parses YAML or JSON bytes into a tree.
func Decode(data []byte) (*Tree, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse colours: %w", err)
	}
	return FromNode(&doc)
}
