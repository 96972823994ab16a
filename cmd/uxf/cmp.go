package main

import (
	"fmt"

	"github.com/uxf-format/go-uxf/convert"
	"github.com/uxf-format/go-uxf/ir"
	"github.com/uxf-format/go-uxf/libdiff"

	"github.com/scott-cotton/cli"
)

func cmpFiles(cfg *CmpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Cmp.Parse(cc, args)
	if err != nil {
		cfg.Cmp.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: cmp requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getValueFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getValueFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	verdict := "Unequal"
	switch {
	case ir.Identical(a, b):
		verdict = "Identical"
	case ir.Equal(a, b):
		verdict = "Equal"
	}
	if !cfg.Quiet {
		if err := report(cfg, cc, verdict, a, b); err != nil {
			return err
		}
	}
	if verdict == "Unequal" {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func report(cfg *CmpConfig, cc *cli.Context, verdict string, a, b ir.Value) error {
	w := cc.Out
	if _, err := fmt.Fprintln(w, verdict); err != nil {
		return err
	}
	for _, x := range []ir.Value{a, b} {
		d, err := convert.Digest(x)
		if err != nil {
			return fmt.Errorf("error computing digest: %w", err)
		}
		if _, err := fmt.Fprintln(w, d); err != nil {
			return err
		}
	}
	for _, c := range libdiff.Diff(a, b) {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return err
		}
	}
	return nil
}
