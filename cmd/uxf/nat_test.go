package main

import (
	"bytes"
	"testing"

	"github.com/scott-cotton/cli"
)

func TestNatToken(t *testing.T) {
	tests := []struct {
		tok  string
		rule bool
		want string
	}{
		{tok: "42", want: "int\t42\n"},
		{tok: "yes", want: "bool\tyes\n"},
		{tok: "1e3", want: "real\t1000.0\n"},
		{tok: "2024-02-29", want: "date\t2024-02-29\n"},
		{tok: "hello", rule: true, want: "str\thello\tstr\n"},
		{tok: "null", rule: true, want: "null\tnull\tnull\n"},
	}
	for _, test := range tests {
		t.Run(test.tok, func(t *testing.T) {
			cfg := &NatConfig{
				MainConfig: &MainConfig{Main: cli.NewCommand("uxf")},
				Rule:       test.rule,
			}
			buf := &bytes.Buffer{}
			if err := natToken(cfg, buf, cfg.encOpts(buf), test.tok); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != test.want {
				t.Errorf("got %q, want %q", got, test.want)
			}
		})
	}
}

func TestNaturalizerShared(t *testing.T) {
	cfg := &MainConfig{Main: cli.NewCommand("uxf")}
	n := cfg.naturalizer()
	if cfg.naturalizer() != n {
		t.Error("naturalizer rebuilt within one run")
	}
	if len(cfg.convOpts()) != 1 || cfg.naturalizer() != n {
		t.Error("convOpts rebuilt the naturalizer")
	}
}

func TestFormats(t *testing.T) {
	cfg := &MainConfig{}
	if got := cfg.inFormat("a.yaml").String(); got != "yaml" {
		t.Errorf("inFormat(a.yaml) = %s", got)
	}
	if got := cfg.outFormat().String(); got != "json" {
		t.Errorf("outFormat() = %s", got)
	}
	cfg.J = true
	if got := cfg.inFormat("a.yaml").String(); got != "json" {
		t.Errorf("inFormat(a.yaml) with -j = %s", got)
	}
	cfg.Out = "x.yml"
	if got := cfg.outFormat().String(); got != "yaml" {
		t.Errorf("outFormat() for x.yml = %s", got)
	}
}
