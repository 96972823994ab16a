// Package schema keeps a registry of named table schemas, so that tables
// built in different places agree on their fields.
package schema

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/uxf-format/go-uxf/ir"
)

var (
	ErrConflict      = errors.New("conflicting schema")
	ErrUnknownSchema = errors.New("unknown schema")
)

// Schema is the name and fields of a table.
type Schema struct {
	Name   string
	Fields []ir.Field
}

// Of returns the schema of t.
func Of(t *ir.Table) (*Schema, error) {
	if !t.HasSchema() {
		return nil, ir.ErrNoSchema
	}
	return &Schema{Name: t.Name(), Fields: t.Fields()}, nil
}

func (s *Schema) String() string {
	res := s.Name + "("
	for i, f := range s.Fields {
		if i > 0 {
			res += ", "
		}
		res += f.Name
		if f.VType != "" {
			res += " " + f.VType
		}
	}
	return res + ")"
}

// NewTable returns an empty table with the schema.
func (s *Schema) NewTable() (*ir.Table, error) {
	t := ir.NewTable()
	if err := t.SetSchemaFields(s.Name, s.Fields...); err != nil {
		return nil, err
	}
	return t, nil
}

// Registry maps table names to schemas. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*Schema
}

func NewRegistry() *Registry {
	return &Registry{schemas: map[string]*Schema{}}
}

// Register adds s. Registering a schema equal to the one already
// registered under the same name is a no-op; a different one fails with
// ErrConflict.
func (r *Registry) Register(s *Schema) error {
	if s == nil {
		return fmt.Errorf("cannot register nil schema")
	}
	if err := ir.CheckName(s.Name); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.schemas[s.Name]; ok {
		if !slices.Equal(old.Fields, s.Fields) {
			return fmt.Errorf("%w: %s registered as %s", ErrConflict, s, old)
		}
		return nil
	}
	r.schemas[s.Name] = &Schema{Name: s.Name, Fields: slices.Clone(s.Fields)}
	return nil
}

// RegisterTable registers the schema of t.
func (r *Registry) RegisterTable(t *ir.Table) error {
	s, err := Of(t)
	if err != nil {
		return err
	}
	return r.Register(s)
}

// Lookup looks up a schema by name.
func (r *Registry) Lookup(name string) *Schema {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.schemas[name]
}

// Names returns the registered names in order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.schemas))
}

// NewTable returns an empty table with the schema registered as name.
func (r *Registry) NewTable(name string) (*ir.Table, error) {
	s := r.Lookup(name)
	if s == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSchema, name)
	}
	return s.NewTable()
}

// Collect registers the schema of every table in v. It stops at the first
// table whose schema conflicts, reporting its path.
func (r *Registry) Collect(v ir.Value) error {
	return v.Walk(func(p ir.Path, x ir.Value, isPost bool) (bool, error) {
		if isPost || x.Kind() != ir.TableKind {
			return true, nil
		}
		if err := r.RegisterTable(x.Table()); err != nil {
			return false, fmt.Errorf("%s: %w", p, err)
		}
		return true, nil
	})
}

// Check verifies that every table in v has a registered schema equal to its
// own, and that every table name used as a vtype is registered.
func (r *Registry) Check(v ir.Value) error {
	return v.Walk(func(p ir.Path, x ir.Value, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		var vtypes []string
		switch x.Kind() {
		case ir.ListKind:
			vtypes = append(vtypes, x.List().VType)
		case ir.MapKind:
			vtypes = append(vtypes, x.Map().VType)
		case ir.TableKind:
			t := x.Table()
			s := r.Lookup(t.Name())
			if s == nil {
				return false, fmt.Errorf("%s: %w: %s", p, ErrUnknownSchema, t.Name())
			}
			if !slices.Equal(s.Fields, t.Fields()) {
				own, _ := Of(t)
				return false, fmt.Errorf("%s: %w: %s registered as %s", p, ErrConflict, own, s)
			}
			for _, f := range s.Fields {
				vtypes = append(vtypes, f.VType)
			}
		}
		for _, vt := range vtypes {
			if vt == "" {
				continue
			}
			if _, err := ir.ParseKind(vt); err == nil {
				continue
			}
			if r.Lookup(vt) == nil {
				return false, fmt.Errorf("%s: %w: vtype %s", p, ErrUnknownSchema, vt)
			}
		}
		return true, nil
	})
}
