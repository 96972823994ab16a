package main

import (
	"fmt"

	"github.com/uxf-format/go-uxf/schema"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	reg := schema.NewRegistry()
	for _, file := range inputs(args) {
		v, err := getValueFile(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := reg.Collect(v); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if err := reg.Check(v); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
	}
	if !cfg.List {
		return nil
	}
	for _, name := range reg.Names() {
		if _, err := fmt.Fprintln(cc.Out, reg.Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}
