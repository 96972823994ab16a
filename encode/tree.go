package encode

import (
	"io"
	"strconv"
	"strings"

	"github.com/uxf-format/go-uxf/ir"
)

// Tree writes an indented outline of v, one line per value, giving the
// kind and token of each scalar and the kind, annotations and size of
// each collection. Map entries are labelled by key, list items and table
// records by index and record values by field name.
func Tree(v ir.Value, w io.Writer, opts ...EncodeOption) error {
	tw := &treeWriter{w: w, es: newEncState(opts...)}
	return v.Accept(tw)
}

// MustTree is Tree into a string which panics on error.
func MustTree(v ir.Value, opts ...EncodeOption) string {
	buf := &strings.Builder{}
	if err := Tree(v, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

type treeWriter struct {
	w  io.Writer
	es *EncState

	label     string
	labelKind ir.Kind
}

func (tw *treeWriter) color(k ir.Kind, a ColorAttr, s string) string {
	if tw.es.Color == nil {
		return s
	}
	return tw.es.Color(k, a, s)
}

func (tw *treeWriter) line(k ir.Kind, body, comment string) error {
	b := &strings.Builder{}
	b.WriteString(strings.Repeat(" ", tw.es.depth*tw.es.indent))
	if tw.label != "" {
		b.WriteString(tw.color(tw.labelKind, KeyColor, tw.label))
		b.WriteString(tw.color(tw.labelKind, SepColor, ":"))
		b.WriteByte(' ')
	}
	b.WriteString(tw.color(k, KindColor, k.String()))
	if body != "" {
		b.WriteByte(' ')
		b.WriteString(body)
	}
	if tw.es.comments && comment != "" {
		b.WriteString(tw.color(k, CommentColor, " # "+strings.ReplaceAll(comment, "\n", " ")))
	}
	b.WriteByte('\n')
	_, err := io.WriteString(tw.w, b.String())
	return err
}

func (tw *treeWriter) record(r int) error {
	ln := strings.Repeat(" ", tw.es.depth*tw.es.indent) +
		tw.color(ir.TableKind, KeyColor, size(r)) +
		tw.color(ir.TableKind, SepColor, ":") + "\n"
	_, err := io.WriteString(tw.w, ln)
	return err
}

func (tw *treeWriter) child(parent ir.Kind, label string, v ir.Value) error {
	saveLabel, saveKind := tw.label, tw.labelKind
	tw.label, tw.labelKind = label, parent
	tw.es.depth++
	err := v.Accept(tw)
	tw.es.depth--
	tw.label, tw.labelKind = saveLabel, saveKind
	return err
}

func (tw *treeWriter) VisitScalar(v ir.Value) error {
	tok, err := scalar(v, tw.es)
	if err != nil {
		return err
	}
	if v.IsNull() {
		return tw.line(v.Kind(), "", "")
	}
	return tw.line(v.Kind(), tw.color(v.Kind(), ValueColor, tok), "")
}

func size(n int) string {
	return "[" + strconv.Itoa(n) + "]"
}

func (tw *treeWriter) VisitList(l *ir.List) error {
	body := size(l.Len())
	if l.VType != "" {
		body = l.VType + " " + body
	}
	if err := tw.line(ir.ListKind, body, l.Comment); err != nil {
		return err
	}
	for i, v := range l.All() {
		if err := tw.child(ir.ListKind, size(i), v); err != nil {
			return err
		}
	}
	return nil
}

func (tw *treeWriter) VisitMap(m *ir.Map) error {
	var parts []string
	if m.KType != "" {
		parts = append(parts, m.KType)
	}
	if m.VType != "" {
		parts = append(parts, m.VType)
	}
	parts = append(parts, size(m.Len()))
	if err := tw.line(ir.MapKind, strings.Join(parts, " "), m.Comment); err != nil {
		return err
	}
	for k, v := range m.All() {
		label, err := scalar(k, tw.es)
		if err != nil {
			return err
		}
		if err := tw.child(ir.MapKind, label, v); err != nil {
			return err
		}
	}
	return nil
}

func (tw *treeWriter) VisitTable(t *ir.Table) error {
	body := size(t.Len())
	if t.HasSchema() {
		fields := make([]string, 0, t.FieldCount())
		for _, f := range t.Fields() {
			if f.VType != "" {
				fields = append(fields, f.Name+" "+f.VType)
				continue
			}
			fields = append(fields, f.Name)
		}
		body = t.Name() + "(" + strings.Join(fields, ", ") + ") " + body
	}
	if err := tw.line(ir.TableKind, body, t.Comment); err != nil {
		return err
	}
	names := t.FieldNames()
	for r, rec := range t.Records() {
		tw.es.depth++
		err := tw.record(r)
		if err == nil {
			for i, v := range rec {
				if err = tw.child(ir.TableKind, names[i], v); err != nil {
					break
				}
			}
		}
		tw.es.depth--
		if err != nil {
			return err
		}
	}
	return nil
}
