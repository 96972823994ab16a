package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type kindCounter struct {
	counts map[string]int
}

func (k *kindCounter) VisitScalar(v Value) error {
	k.counts[v.TypeName()]++
	return nil
}

func (k *kindCounter) VisitList(l *List) error {
	k.counts["list"]++
	for _, v := range l.All() {
		if err := v.Accept(k); err != nil {
			return err
		}
	}
	return nil
}

func (k *kindCounter) VisitMap(m *Map) error {
	k.counts["map"]++
	for _, v := range m.All() {
		if err := v.Accept(k); err != nil {
			return err
		}
	}
	return nil
}

func (k *kindCounter) VisitTable(t *Table) error {
	k.counts["table"]++
	for _, rec := range t.Records() {
		for _, v := range rec {
			if err := v.Accept(k); err != nil {
				return err
			}
		}
	}
	return nil
}

func TestAccept(t *testing.T) {
	k := &kindCounter{counts: map[string]int{}}
	if err := pointsDoc(t).Accept(k); err != nil {
		t.Fatal(err)
	}
	want := map[string]int{"map": 1, "table": 1, "list": 1, "int": 3, "null": 1, "str": 2}
	if diff := cmp.Diff(want, k.counts); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestWalk(t *testing.T) {
	var pre, post []string
	err := pointsDoc(t).Walk(func(p Path, v Value, isPost bool) (bool, error) {
		if isPost {
			post = append(post, p.String())
			return true, nil
		}
		pre = append(pre, p.String())
		return v.Kind() != ListKind, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	wantPre := []string{"$", "$.pts", "$.pts[0].x", "$.pts[0].y", "$.pts[1].x", "$.pts[1].y", "${7}"}
	if diff := cmp.Diff(wantPre, pre); diff != "" {
		t.Errorf("pre (-want +got):\n%s", diff)
	}
	wantPost := []string{"$.pts[0].x", "$.pts[0].y", "$.pts[1].x", "$.pts[1].y", "$.pts", "${7}", "$"}
	if diff := cmp.Diff(wantPost, post); diff != "" {
		t.Errorf("post (-want +got):\n%s", diff)
	}
}

func TestWalkError(t *testing.T) {
	stop := errors.New("stop")
	n := 0
	err := pointsDoc(t).Walk(func(p Path, v Value, isPost bool) (bool, error) {
		n++
		if v.Kind() == TableKind {
			return false, stop
		}
		return true, nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("got %v", err)
	}
	if n != 2 {
		t.Errorf("got %d calls", n)
	}
}
