package ir

import (
	"errors"
	"strings"
	"testing"
)

func TestCheckName(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"x", true},
		{"_x", true},
		{"x1_y", true},
		{"été", true},
		{strings.Repeat("a", MaxIdentifierLen), true},
		{"", false},
		{"1x", false},
		{"a b", false},
		{"a-b", false},
		{"int", false},
		{"null", false},
		{"yes", false},
		{strings.Repeat("a", MaxIdentifierLen+1), false},
	}
	for _, test := range tests {
		err := CheckName(test.name)
		if (err == nil) != test.ok {
			t.Errorf("%q: got %v", test.name, err)
		}
		if err != nil && !errors.Is(err, ErrInvalidName) {
			t.Errorf("%q: got %v want ErrInvalidName", test.name, err)
		}
	}
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		in      string
		isTable bool
		out     string
	}{
		{"point", true, "point"},
		{"my table", true, "my_table"},
		{"a--b", false, "a_b"},
		{"a/b:c", false, "a_b_c"},
		{"1abc", false, "F_1abc"},
		{"1abc", true, "T_1abc"},
		{"null", false, "F_null"},
		{"x$y", false, "xy"},
		{"", true, "T_1"},
		{"$$", false, "F_1"},
		{strings.Repeat("b", 70), false, strings.Repeat("b", MaxIdentifierLen)},
	}
	for _, test := range tests {
		got := Canonicalize(test.in, test.isTable)
		if got != test.out {
			t.Errorf("%q: got %q want %q", test.in, got, test.out)
		}
		if err := CheckName(got); err != nil {
			t.Errorf("%q: canonical %q: %v", test.in, got, err)
		}
	}
	c := NewCanonicalizer()
	a, b := c.Canonicalize("", false), c.Canonicalize("", false)
	if a != "F_1" || b != "F_2" {
		t.Errorf("got %q %q", a, b)
	}
}
