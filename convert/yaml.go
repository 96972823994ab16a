package convert

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/uxf-format/go-uxf/debug"
	"github.com/uxf-format/go-uxf/ir"
)

// ToYAML writes v as a YAML document. Unlike JSON, YAML can hold
// non-finite reals.
func ToYAML(v ir.Value, w io.Writer, opts ...Option) error {
	o := newOptions(opts...)
	e := &encoder{sorted: o.sorted, nonFinite: true}
	g, err := e.generic(v, nil)
	if err != nil {
		return err
	}
	if debug.Convert() {
		debug.LogAny(g)
	}
	d, err := yaml.Marshal(yamlTree(g))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func yamlTree(x any) any {
	switch x := x.(type) {
	case object:
		res := make(yaml.MapSlice, len(x))
		for i, m := range x {
			res[i] = yaml.MapItem{Key: yamlTree(m.Key), Value: yamlTree(m.Value)}
		}
		return res
	case []any:
		res := make([]any, len(x))
		for i, y := range x {
			res[i] = yamlTree(y)
		}
		return res
	case json.Number:
		f, _ := strconv.ParseFloat(string(x), 64)
		return f
	}
	return x
}

// FromYAML reads the first document of a YAML stream, keeping mapping
// order. Plain scalar keys keep their kind, so the key 7 is an Int and
// "7" a Str.
func FromYAML(r io.Reader, opts ...Option) (ir.Value, error) {
	o := newOptions(opts...)
	data, err := io.ReadAll(r)
	if err != nil {
		return ir.Value{}, err
	}
	f, err := parser.ParseBytes(data, 0)
	if err != nil {
		return ir.Value{}, decodeErr(nil, err)
	}
	var x any
	if len(f.Docs) != 0 {
		yr := &yamlReader{anchors: map[string]ast.Node{}}
		if x, err = yr.node(f.Docs[0].Body); err != nil {
			return ir.Value{}, decodeErr(nil, err)
		}
	}
	if debug.Convert() {
		debug.LogAny(x)
	}
	d := &decoder{nat: o.nat}
	return d.value(x, nil)
}

// yamlReader turns a YAML syntax tree into the generic form, with
// mappings as yaml.MapSlice.
type yamlReader struct {
	anchors map[string]ast.Node
}

func (y *yamlReader) node(n ast.Node) (any, error) {
	switch n := n.(type) {
	case nil, *ast.CommentGroupNode, *ast.CommentNode:
		return nil, nil
	case *ast.MappingNode:
		res := make(yaml.MapSlice, 0, len(n.Values))
		for _, mv := range n.Values {
			var err error
			if res, err = y.mappingValue(res, mv); err != nil {
				return nil, err
			}
		}
		return res, nil
	case *ast.MappingValueNode:
		return y.mappingValue(nil, n)
	case *ast.SequenceNode:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			x, err := y.node(v)
			if err != nil {
				return nil, err
			}
			res[i] = x
		}
		return res, nil
	case *ast.MappingKeyNode:
		return y.node(n.Value)
	case *ast.AnchorNode:
		x, err := y.node(n.Value)
		if err != nil {
			return nil, err
		}
		// registered after its value so an anchor cannot refer to itself
		y.anchors[n.Name.GetToken().Value] = n.Value
		return x, nil
	case *ast.AliasNode:
		name := n.Value.String()
		target, ok := y.anchors[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown alias %q", ErrSyntax, name)
		}
		return y.node(target)
	case *ast.TagNode:
		switch n.Value.(type) {
		case *ast.MappingNode, *ast.MappingValueNode, *ast.SequenceNode:
			return y.node(n.Value)
		}
		var x any
		if err := yaml.NodeToValue(n, &x); err != nil {
			return nil, err
		}
		return x, nil
	case ast.ScalarNode:
		return n.GetValue(), nil
	}
	return nil, fmt.Errorf("%w: unexpected yaml %s", ErrSyntax, n.Type())
}

func (y *yamlReader) mappingValue(res yaml.MapSlice, mv *ast.MappingValueNode) (yaml.MapSlice, error) {
	v, err := y.node(mv.Value)
	if err != nil {
		return nil, err
	}
	if mv.Key.IsMergeKey() {
		return merge(res, v)
	}
	k, err := y.key(mv.Key)
	if err != nil {
		return nil, err
	}
	return append(res, yaml.MapItem{Key: k, Value: v}), nil
}

// key reads a mapping key. Scalars which cannot be map keys, such as
// reals and booleans, are kept as their source text.
func (y *yamlReader) key(n ast.MapKeyNode) (any, error) {
	switch n.(type) {
	case *ast.FloatNode, *ast.BoolNode, *ast.NullNode, *ast.InfinityNode, *ast.NanNode:
		return n.GetToken().Value, nil
	}
	return y.node(n)
}

// merge applies a << merge key whose value is a mapping or a list of
// mappings.
func merge(res yaml.MapSlice, v any) (yaml.MapSlice, error) {
	switch v := v.(type) {
	case yaml.MapSlice:
		return append(res, v...), nil
	case []any:
		for _, x := range v {
			var err error
			if res, err = merge(res, x); err != nil {
				return nil, err
			}
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: merge key wants a mapping, got %T", ErrSyntax, v)
}
