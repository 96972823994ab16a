package main

import (
	"fmt"

	"github.com/uxf-format/go-uxf/encode"

	"github.com/scott-cotton/cli"
)

func show(cfg *ShowConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Show.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := append(cfg.encOpts(cc.Out), encode.EncodeComments(cfg.Comments))
	files := inputs(args)
	for i, file := range files {
		v, err := getValueFile(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if i > 0 {
			if _, err := cc.Out.Write([]byte("\n")); err != nil {
				return err
			}
		}
		if err := encode.Tree(v, cc.Out, opts...); err != nil {
			return fmt.Errorf("error showing %s: %w", file, err)
		}
	}
	return nil
}
