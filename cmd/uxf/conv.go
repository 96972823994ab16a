package main

import (
	"fmt"

	"github.com/uxf-format/go-uxf/convert"

	"github.com/scott-cotton/cli"
)

func conv(cfg *ConvConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Conv.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := append(cfg.convOpts(), convert.SortKeys(cfg.Sort))
	if cfg.Indent != "" {
		opts = append(opts, convert.Indent(cfg.Indent))
	}
	f := cfg.outFormat()
	files := inputs(args)
	for i, file := range files {
		v, err := getValueFile(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if i > 0 && !f.IsJSON() {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if err := convert.Encode(v, cc.Out, f, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
