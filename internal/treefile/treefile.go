// Package treefile decodes virtual trees from YAML or JSON files.
//
// A node is either a scalar, which becomes a text node, null, which renders
// nothing, or a mapping describing an element:
//
//	tag: ul
//	props:
//	  className: list
//	style:
//	  color: red
//	children:
//	  - tag: li
//	    children: A
//	  - tag: li
//	    children: [B, " and ", C]
package treefile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/vrt/internal/errors"
	"github.com/vango-dev/vrt/pkg/vdom"
)

// element is the mapping form of a node.
type element struct {
	Tag      string            `yaml:"tag"`
	Props    map[string]any    `yaml:"props"`
	Style    map[string]string `yaml:"style"`
	Children yaml.Node         `yaml:"children"`
}

var elementKeys = map[string]bool{"tag": true, "props": true, "style": true, "children": true}

// Load reads and decodes the tree file at path.
func Load(path string) (*vdom.VNode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E150").
			WithDetail("Failed to read " + filepath.Base(path)).
			Wrap(err)
	}
	return Parse(data, path)
}

// Decode reads a tree from r. name is used in error locations.
func Decode(r io.Reader, name string) (*vdom.VNode, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.New("E150").Wrap(err)
	}
	return Parse(data, name)
}

// Parse decodes a tree from data. name is used in error locations.
func Parse(data []byte, name string) (*vdom.VNode, error) {
	var doc yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.New("E150").
			WithDetail(name + ": " + err.Error()).
			Wrap(err)
	}
	d := decoder{file: name}
	return d.node(&doc)
}

type decoder struct {
	file string
}

func (d decoder) node(n *yaml.Node) (*vdom.VNode, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return d.node(n.Content[0])

	case yaml.AliasNode:
		return d.node(n.Alias)

	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
		return vdom.Text(n.Value), nil

	case yaml.MappingNode:
		return d.element(n)
	}

	return nil, d.invalid(n, "a sequence is only allowed under children")
}

func (d decoder) element(n *yaml.Node) (*vdom.VNode, error) {
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		if !elementKeys[key.Value] {
			return nil, d.invalid(key, fmt.Sprintf("unknown key %q", key.Value))
		}
	}

	var el element
	if err := n.Decode(&el); err != nil {
		return nil, d.invalid(n, err.Error())
	}
	if el.Tag == "" {
		return nil, d.invalid(n, "element has no tag")
	}

	props := make(vdom.Props, len(el.Props)+1)
	for k, v := range el.Props {
		props[k] = v
	}
	if len(el.Style) > 0 {
		props[vdom.PropStyle] = vdom.Style(el.Style)
	}

	var children []any
	switch el.Children.Kind {
	case 0:
	case yaml.SequenceNode:
		for _, c := range el.Children.Content {
			child, err := d.node(c)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
	default:
		child, err := d.node(&el.Children)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	return vdom.H(el.Tag, props, children...), nil
}

func (d decoder) invalid(n *yaml.Node, detail string) error {
	return errors.New("E151").
		WithDetail(detail).
		WithLocation(d.file, n.Line, n.Column)
}
